package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/views"
)

// farmerView returns a mounted and loaded farmer dashboard. Callers must
// Unmount it.
func (a *App) farmerView(ctx context.Context) (*views.FarmerDashboard, error) {
	v := views.NewFarmerDashboard(a.api, a.store.Current(), a.log)
	v.Mount()
	if err := v.Load(ctx); err != nil {
		v.Unmount()
		return nil, err
	}
	return v, nil
}

func (a *App) renderFarmer(v *views.FarmerDashboard) {
	a.section("Farmer dashboard")
	a.counts("Crops", v.CropsByStatus())
	a.counts("Batches", v.BatchesByStatus())
	fmt.Fprintf(a.out, "Total quantity: %g kg\n", v.TotalQuantity())
	a.section("Crops")
	a.table(cropHeaders, cropRows(v.Crops()))
	a.section("Batches")
	a.table(batchHeaders, batchRows(v.Batches()))
}

func (a *App) crops(ctx context.Context, _ []string) error {
	v, err := a.farmerView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	a.table(cropHeaders, cropRows(v.Crops()))
	return nil
}

func (a *App) addCrop(ctx context.Context, _ []string) error {
	var c models.Crop
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Crop name", &c.CropName},
		{"Crop type", &c.CropType},
		{"Location", &c.Location},
		{"Description", &c.Description},
		{"Batch id (optional)", &c.BatchID},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	quantity, err := getSimpleText(a.reader, "Quantity (kg)", a.out)
	if err != nil {
		return err
	}
	q, err := parseAmount(quantity, "quantity")
	if err != nil {
		return err
	}
	price, err := getSimpleText(a.reader, "Price per kg", a.out)
	if err != nil {
		return err
	}
	p, err := parseAmount(price, "price")
	if err != nil {
		return err
	}
	c.Quantity, c.Price = models.Number(q), models.Number(p)

	v, err := a.farmerView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	if err := v.AddCrop(ctx, c); err != nil {
		return err
	}
	a.ok("Crop %q added", c.CropName)
	a.table(cropHeaders, cropRows(v.Crops()))
	return nil
}

func (a *App) harvest(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("harvest <cropId> <yield>")
	}
	yield, err := parseAmount(args[1], "yield")
	if err != nil {
		return err
	}
	v, err := a.farmerView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	if err := v.Harvest(ctx, models.ID(args[0]), yield, a.now()); err != nil {
		return err
	}
	a.ok("Crop %s harvested", args[0])
	return nil
}

func (a *App) deleteCrop(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("delcrop <cropId>")
	}
	v, err := a.farmerView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	if err := v.DeleteCrop(ctx, models.ID(args[0])); err != nil {
		return err
	}
	a.ok("Crop %s deleted", args[0])
	return nil
}

func (a *App) newBatch(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("newbatch <cropType> <quantity> [location]")
	}
	q, err := parseAmount(args[1], "quantity")
	if err != nil {
		return err
	}
	v, err := a.farmerView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	id, err := v.CreateBatch(ctx, args[0], q, strings.Join(args[2:], " "))
	if err != nil {
		return err
	}
	a.ok("Batch %s created", id)
	return nil
}

func (a *App) sell(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usageError("sell <cropId> <price> <quantity>")
	}
	price, err := parseAmount(args[1], "price")
	if err != nil {
		return err
	}
	q, err := parseAmount(args[2], "quantity")
	if err != nil {
		return err
	}
	v, err := a.farmerView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	l, err := v.ListCrop(ctx, models.ID(args[0]), price, q)
	if err != nil {
		return err
	}
	a.ok("Listing %s created (%s)", l.ListingID, l.Status)
	return nil
}
