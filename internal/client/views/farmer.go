package views

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

type FarmerAPI interface {
	client.CropAPI
	client.BatchAPI
	client.ListingAPI
}

// FarmerDashboard shows a farmer's crops and batches.
type FarmerDashboard struct {
	view
	api    FarmerAPI
	farmer models.ID
	now    func() time.Time

	crops   []models.Crop
	batches []models.Batch
}

func NewFarmerDashboard(api FarmerAPI, user *models.Session, log logging.Logger) *FarmerDashboard {
	d := &FarmerDashboard{api: api, now: time.Now}
	if user != nil {
		d.farmer = user.ID
	}
	d.init("farmer-dashboard", log)
	return d
}

const (
	slotCrops   = "crops"
	slotBatches = "batches"
)

// Load fetches crops and batches in parallel. Each list is committed on its
// own, so a reload of one list after a write does not discard the other.
func (d *FarmerDashboard) Load(ctx context.Context) error {
	l, err := d.begin(slotCrops, slotBatches)
	if err != nil {
		return err
	}

	var crops []models.Crop
	var batches []models.Batch

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		crops, err = d.api.CropsByFarmer(gctx, d.farmer)
		return err
	})
	g.Go(func() error {
		var err error
		batches, err = d.api.BatchesByFarmer(gctx, d.farmer)
		return err
	})
	if err := g.Wait(); err != nil {
		return d.loadFailed(ctx, err)
	}

	d.commitSlot(ctx, l, slotCrops, func() { d.crops = crops })
	d.commitSlot(ctx, l, slotBatches, func() { d.batches = batches })
	return nil
}

func (d *FarmerDashboard) loadCrops(ctx context.Context) error {
	gen, err := d.begin(slotCrops)
	if err != nil {
		return err
	}
	crops, err := d.api.CropsByFarmer(ctx, d.farmer)
	if err != nil {
		return d.loadFailed(ctx, err)
	}
	d.commit(ctx, gen, func() { d.crops = crops })
	return nil
}

func (d *FarmerDashboard) loadBatches(ctx context.Context) error {
	gen, err := d.begin(slotBatches)
	if err != nil {
		return err
	}
	batches, err := d.api.BatchesByFarmer(ctx, d.farmer)
	if err != nil {
		return d.loadFailed(ctx, err)
	}
	d.commit(ctx, gen, func() { d.batches = batches })
	return nil
}

func (d *FarmerDashboard) Crops() []models.Crop {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.crops)
}

func (d *FarmerDashboard) Batches() []models.Batch {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.batches)
}

// CropsByStatus counts crops per status; a missing status counts as PLANTED.
func (d *FarmerDashboard) CropsByStatus() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := map[string]int{}
	for _, c := range d.crops {
		status := strings.ToUpper(c.Status)
		if status == "" {
			status = models.CropPlanted
		}
		out[status]++
	}
	return out
}

func (d *FarmerDashboard) BatchesByStatus() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := map[string]int{}
	for _, b := range d.batches {
		out[b.Status]++
	}
	return out
}

func (d *FarmerDashboard) TotalQuantity() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var sum float64
	for _, c := range d.crops {
		sum += c.Quantity.Float()
	}
	return sum
}

// AddCrop creates a crop owned by the farmer and re-fetches the list.
func (d *FarmerDashboard) AddCrop(ctx context.Context, crop models.Crop) error {
	if strings.TrimSpace(crop.CropName) == "" {
		return fmt.Errorf("%w: crop name is required", common.ErrorValidation)
	}
	if crop.Quantity < 0 || crop.Price < 0 {
		return fmt.Errorf("%w: price and quantity must not be negative", common.ErrorValidation)
	}
	crop.FarmerID = d.farmer

	key := "add-crop:" + crop.CropName + ":" + crop.BatchID
	err := d.write(ctx, key, func() error {
		_, err := d.api.AddCrop(ctx, crop)
		return err
	})
	if err != nil {
		return err
	}
	return d.refresh(ctx, d.loadCrops)
}

// DeleteCrop removes the crop locally once the backend confirms.
func (d *FarmerDashboard) DeleteCrop(ctx context.Context, id models.ID) error {
	err := d.write(ctx, "delete-crop:"+id.String(), func() error {
		return d.api.DeleteCrop(ctx, id)
	})
	if err != nil {
		return err
	}
	d.patch(func() {
		d.crops = slices.DeleteFunc(d.crops, func(c models.Crop) bool { return c.CropID == id })
	})
	return nil
}

// Harvest marks a crop harvested and replaces it with the returned record.
func (d *FarmerDashboard) Harvest(ctx context.Context, id models.ID, actualYield float64, on time.Time) error {
	if actualYield < 0 {
		return fmt.Errorf("%w: yield must not be negative", common.ErrorValidation)
	}
	if on.IsZero() {
		on = d.now()
	}
	req := models.HarvestRequest{ActualYield: actualYield, HarvestDate: on.Format("2006-01-02")}

	updated, err := writeResult(ctx, &d.view, "harvest:"+id.String(), func() (models.Crop, error) {
		return d.api.MarkHarvested(ctx, id, req)
	})
	if err != nil {
		return err
	}
	if updated.CropID == "" {
		updated.CropID = id
	}
	d.patch(func() {
		for i := range d.crops {
			if d.crops[i].CropID == id {
				d.crops[i] = updated
			}
		}
	})
	return nil
}

// CreateBatch opens a new batch for cropType and re-fetches batches.
// It returns the generated batch id.
func (d *FarmerDashboard) CreateBatch(ctx context.Context, cropType string, quantity float64, location string) (string, error) {
	if strings.TrimSpace(cropType) == "" {
		return "", fmt.Errorf("%w: crop type is required", common.ErrorValidation)
	}
	id, err := writeResult(ctx, &d.view, "create-batch:"+cropType, func() (string, error) {
		id, err := NewBatchID(d.now())
		if err != nil {
			return "", err
		}
		batch := models.Batch{
			BatchID:       id,
			FarmerID:      d.farmer,
			CropType:      cropType,
			TotalQuantity: models.Number(quantity),
			Location:      location,
			Status:        models.BatchPlanted,
		}
		if _, err := d.api.CreateBatch(ctx, batch); err != nil {
			return "", err
		}
		return id, nil
	})
	if err != nil {
		return "", err
	}
	return id, d.refresh(ctx, d.loadBatches)
}

// SetBatchStatus updates one batch and patches its status locally.
func (d *FarmerDashboard) SetBatchStatus(ctx context.Context, batchID, status string) error {
	err := d.write(ctx, "batch-status:"+batchID, func() error {
		_, err := d.api.UpdateBatchStatus(ctx, batchID, status, d.farmer)
		return err
	})
	if err != nil {
		return err
	}
	d.patch(func() {
		for i := range d.batches {
			if d.batches[i].BatchID == batchID {
				d.batches[i].Status = status
			}
		}
	})
	return nil
}

// ListCrop offers a crop on the marketplace. The listing starts PENDING
// until a distributor approves its batch.
func (d *FarmerDashboard) ListCrop(ctx context.Context, cropID models.ID, price, quantity float64) (models.Listing, error) {
	crop, ok := d.crop(cropID)
	if !ok {
		return models.Listing{}, fmt.Errorf("crop %s: %w", cropID, common.ErrorNotFound)
	}
	if price <= 0 || quantity <= 0 {
		return models.Listing{}, fmt.Errorf("%w: price and quantity must be positive", common.ErrorValidation)
	}
	if quantity > crop.Quantity.Float() {
		return models.Listing{}, fmt.Errorf("%w: only %g available", common.ErrorValidation, crop.Quantity.Float())
	}

	listing := models.Listing{
		CropID:   cropID,
		FarmerID: d.farmer,
		BatchID:  crop.BatchID,
		Price:    models.Number(price),
		Quantity: models.Number(quantity),
		Status:   models.ListingPending,
	}

	return writeResult(ctx, &d.view, "list-crop:"+cropID.String(), func() (models.Listing, error) {
		return d.api.CreateListing(ctx, listing)
	})
}

func (d *FarmerDashboard) crop(id models.ID) (models.Crop, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := slices.IndexFunc(d.crops, func(c models.Crop) bool { return c.CropID == id })
	if i < 0 {
		return models.Crop{}, false
	}
	return d.crops[i], true
}

var errNoBatch = errors.New("crop has no batch")

// BatchOf returns the batch a crop belongs to.
func (d *FarmerDashboard) BatchOf(cropID models.ID) (models.Batch, error) {
	crop, ok := d.crop(cropID)
	if !ok {
		return models.Batch{}, fmt.Errorf("crop %s: %w", cropID, common.ErrorNotFound)
	}
	if crop.BatchID == "" {
		return models.Batch{}, errNoBatch
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, b := range d.batches {
		if b.BatchID == crop.BatchID {
			return b, nil
		}
	}
	return models.Batch{}, fmt.Errorf("batch %s: %w", crop.BatchID, common.ErrorNotFound)
}
