package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/farmchainx/internal/common"
)

// FormatPrice renders v as US dollars, e.g. $1,234.50.
func FormatPrice(v float64) string {
	s := humanize.FormatFloat("#,###.##", v)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// FormatDate renders t as "January 2, 2006", or N/A for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006")
}

// Confidence grades a quality score in percent.
func Confidence(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	default:
		return "D"
	}
}

// NewBatchID returns a batch identifier of the form BCH_<unix ms>_<9 chars>.
func NewBatchID(now time.Time) (string, error) {
	suffix, err := common.RandBase36(9)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BCH_%d_%s", now.UnixMilli(), suffix), nil
}
