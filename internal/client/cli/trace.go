package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/farmchainx/internal/client/views"
)

// trace prints a batch's custody history. It needs no session, like the
// public QR-code page it mirrors.
func (a *App) trace(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("trace <batchId>")
	}
	v := views.NewTraceability(a.api, a.log)
	v.Mount()
	defer v.Unmount()
	if err := v.Load(ctx, args[0]); err != nil {
		return err
	}

	tr := v.Trace()
	a.section("Batch " + v.BatchID())
	fmt.Fprintf(a.out, "Crop: %s  Farmer: %s  Distributor: %s\n", tr.CropType, tr.FarmerID, tr.DistributorID)

	rows := make([][]string, 0, len(tr.Traces))
	for _, e := range tr.Traces {
		rows = append(rows, []string{views.FormatDate(e.Timestamp.Time), e.Action, e.ActorRole, e.Details})
	}
	a.table([]string{"Date", "Action", "By", "Details"}, rows)
	a.section("Crops in batch")
	a.table(cropHeaders, cropRows(v.Crops()))
	return nil
}
