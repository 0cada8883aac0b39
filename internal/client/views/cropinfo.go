package views

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

const cropHistorySize = 10

// CropQuery is one past question to the crop assistant.
type CropQuery struct {
	Crop     string
	Type     string
	At       time.Time
	Fallback bool
}

// Section is one labelled part of an answer.
type Section struct {
	Label string
	Value string
}

// CropAssistant asks the backend's AI endpoint about crops and keeps the
// last few questions for the session.
type CropAssistant struct {
	view
	api client.AIAPI
	now func() time.Time

	loaded  bool
	info    models.CropInfo
	history []CropQuery
}

func NewCropAssistant(api client.AIAPI, log logging.Logger) *CropAssistant {
	a := &CropAssistant{api: api, now: time.Now}
	a.init("crop-assistant", log)
	return a
}

// Load asks about name. Asking again supersedes an answer still in flight.
func (a *CropAssistant) Load(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: crop name is required", common.ErrorValidation)
	}
	gen, err := a.begin()
	if err != nil {
		return err
	}
	info, err := a.api.CropInfo(ctx, name)
	if err != nil {
		return a.loadFailed(ctx, err)
	}
	if !info.Success {
		a.log.Warn(ctx, "crop assistant returned fallback data", "crop", name, "message", info.Message)
	}

	a.commit(ctx, gen, func() {
		a.loaded = true
		a.info = info
		q := CropQuery{Crop: name, Type: info.Data[models.CropInfoType], At: a.now(), Fallback: !info.Success}
		a.history = append([]CropQuery{q}, a.history...)
		if len(a.history) > cropHistorySize {
			a.history = a.history[:cropHistorySize]
		}
	})
	return nil
}

func (a *CropAssistant) Info() models.CropInfo {
	a.mu.RLock()
	defer a.mu.RUnlock()
	info := a.info
	info.Data = maps.Clone(a.info.Data)
	return info
}

// Fallback reports whether the last answer is the backend's generic one.
func (a *CropAssistant) Fallback() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loaded && !a.info.Success
}

// Sections lists the non-empty parts of the last answer: the known sections
// in their usual order, then anything else by key.
func (a *CropAssistant) Sections() []Section {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []Section
	for _, key := range models.CropInfoSections {
		if v := strings.TrimSpace(a.info.Data[key]); v != "" {
			out = append(out, Section{Label: sectionLabel(key), Value: v})
		}
	}
	for _, key := range slices.Sorted(maps.Keys(a.info.Data)) {
		if slices.Contains(models.CropInfoSections, key) {
			continue
		}
		if v := strings.TrimSpace(a.info.Data[key]); v != "" {
			out = append(out, Section{Label: sectionLabel(key), Value: v})
		}
	}
	return out
}

// History returns the most recent questions first.
func (a *CropAssistant) History() []CropQuery {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.history)
}

// sectionLabel turns SCIENTIFIC_NAME into "Scientific name".
func sectionLabel(key string) string {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
