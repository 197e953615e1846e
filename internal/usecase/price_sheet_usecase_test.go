package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/domain/pricing"
	mock_interfaces "coldchain_pricing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validSheetRequest() CreatePriceSheetRequest {
	return CreatePriceSheetRequest{
		ZoneID:     "zone-se",
		WeekStart:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		WeekEnd:    time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC),
		ProductIDs: []string{"p-1", "p-2"},
		OwnerID:    "user-1",
	}
}

func TestPriceSheetUseCase_Create(t *testing.T) {
	now := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)

	t.Run("empty product set", func(t *testing.T) {
		uc := NewPriceSheetUseCase(nil, nil, nil)
		req := validSheetRequest()
		req.ProductIDs = nil
		if _, err := uc.Create(context.Background(), req); !errors.Is(err, ErrEmptyProductSet) {
			t.Fatalf("expected ErrEmptyProductSet, got %v", err)
		}
	})

	t.Run("unknown zone", func(t *testing.T) {
		uc := NewPriceSheetUseCase(nil, nil, nil)
		req := validSheetRequest()
		req.ZoneID = "zone-nope"
		if _, err := uc.Create(context.Background(), req); !errors.Is(err, ErrInvalidZone) {
			t.Fatalf("expected ErrInvalidZone, got %v", err)
		}
	})

	t.Run("inverted week range", func(t *testing.T) {
		uc := NewPriceSheetUseCase(nil, nil, nil)
		req := validSheetRequest()
		req.WeekStart, req.WeekEnd = req.WeekEnd, req.WeekStart
		if _, err := uc.Create(context.Background(), req); !errors.Is(err, ErrInvalidWeekRange) {
			t.Fatalf("expected ErrInvalidWeekRange, got %v", err)
		}
	})

	t.Run("margin outside bounds", func(t *testing.T) {
		uc := NewPriceSheetUseCase(nil, nil, nil)
		req := validSheetRequest()
		req.MarginPercentByProduct = map[string]float64{"p-1": 150}
		if _, err := uc.Create(context.Background(), req); !errors.Is(err, pricing.ErrInvalidMargin) {
			t.Fatalf("expected ErrInvalidMargin, got %v", err)
		}
	})

	t.Run("no products resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewPriceSheetUseCase(nil, products, nil)

		products.EXPECT().GetByIDs(gomock.Any(), []string{"p-1", "p-2"}).Return(nil, nil)

		if _, err := uc.Create(context.Background(), validSheetRequest()); !errors.Is(err, ErrNoProductsResolved) {
			t.Fatalf("expected ErrNoProductsResolved, got %v", err)
		}
	})

	t.Run("missing rate aborts before any write and names warehouses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		rates := mock_interfaces.NewMockIFreightRateRepository(ctrl)
		uc := NewPriceSheetUseCase(sheets, products, rates)
		uc.now = func() time.Time { return now }

		products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]entities.Product{
			{ID: "p-1", CostPerLb: 2.50, WarehouseID: "wh-a"},
			{ID: "p-2", CostPerLb: 3.10, WarehouseID: "wh-b"},
		}, nil)
		rates.EXPECT().NewestForLane(gomock.Any(), "wh-a", "zone-se", now).Return(entities.FreightRate{
			WarehouseID: "wh-a", ZoneID: "zone-se", RatePerLb: 0.25, ValidUntil: now.Add(72 * time.Hour),
		}, nil)
		// wh-b has no rate at all. No CreateHeader, no BulkInsertItems.
		rates.EXPECT().NewestForLane(gomock.Any(), "wh-b", "zone-se", now).Return(entities.FreightRate{}, nil)

		_, err := uc.Create(context.Background(), validSheetRequest())
		var missing *MissingRatesError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingRatesError, got %v", err)
		}
		if len(missing.WarehouseIDs) != 1 || missing.WarehouseIDs[0] != "wh-b" {
			t.Fatalf("expected wh-b reported missing, got %+v", missing.WarehouseIDs)
		}
	})

	t.Run("expired rate counts as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		rates := mock_interfaces.NewMockIFreightRateRepository(ctrl)
		uc := NewPriceSheetUseCase(sheets, products, rates)
		uc.now = func() time.Time { return now }

		products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]entities.Product{
			{ID: "p-1", CostPerLb: 2.50, WarehouseID: "wh-a"},
		}, nil)
		rates.EXPECT().NewestForLane(gomock.Any(), "wh-a", "zone-se", now).Return(entities.FreightRate{
			WarehouseID: "wh-a", ZoneID: "zone-se", RatePerLb: 0.25, ValidUntil: now.Add(-time.Hour),
		}, nil)

		req := validSheetRequest()
		req.ProductIDs = []string{"p-1"}
		_, err := uc.Create(context.Background(), req)
		var missing *MissingRatesError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingRatesError, got %v", err)
		}
	})

	t.Run("success builds header and items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		rates := mock_interfaces.NewMockIFreightRateRepository(ctrl)
		uc := NewPriceSheetUseCase(sheets, products, rates)
		uc.now = func() time.Time { return now }

		products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]entities.Product{
			{ID: "p-1", CostPerLb: 2.50, WarehouseID: "wh-a"},
			{ID: "p-2", CostPerLb: 3.00, WarehouseID: "wh-a"},
		}, nil)
		rates.EXPECT().NewestForLane(gomock.Any(), "wh-a", "zone-se", now).Return(entities.FreightRate{
			WarehouseID: "wh-a", ZoneID: "zone-se", RatePerLb: 0.25, ValidUntil: now.Add(96 * time.Hour),
		}, nil)

		sheets.EXPECT().CreateHeader(gomock.Any(), gomock.AssignableToTypeOf(entities.PriceSheet{})).DoAndReturn(
			func(_ context.Context, s entities.PriceSheet) (entities.PriceSheet, error) {
				if s.Status != entities.PriceSheetStatusDraft || s.ZoneID != "zone-se" || s.OwnerID != "user-1" {
					t.Fatalf("unexpected header: %+v", s)
				}
				return s, nil
			},
		)
		sheets.EXPECT().BulkInsertItems(gomock.Any(), gomock.AssignableToTypeOf([]entities.PriceSheetItem{})).DoAndReturn(
			func(_ context.Context, items []entities.PriceSheetItem) error {
				if len(items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(items))
				}
				// p-1: cost 2.50, default margin 15%, freight 0.25 -> 3.1250
				if items[0].MarginAmount != 0.3750 || items[0].DeliveredPriceLb != 3.1250 {
					t.Fatalf("unexpected item pricing: %+v", items[0])
				}
				// p-2: margin override 10% -> 3.00 + 0.30 + 0.25 = 3.5500
				if items[1].MarginPercent != 10 || items[1].DeliveredPriceLb != 3.5500 {
					t.Fatalf("unexpected item pricing: %+v", items[1])
				}
				return nil
			},
		)

		req := validSheetRequest()
		req.MarginPercentByProduct = map[string]float64{"p-2": 10}
		res, err := uc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Sheet.ID == "" || len(res.Items) != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("item insert failure compensates by deleting the header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		rates := mock_interfaces.NewMockIFreightRateRepository(ctrl)
		uc := NewPriceSheetUseCase(sheets, products, rates)
		uc.now = func() time.Time { return now }

		products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]entities.Product{
			{ID: "p-1", CostPerLb: 2.50, WarehouseID: "wh-a"},
		}, nil)
		rates.EXPECT().NewestForLane(gomock.Any(), "wh-a", "zone-se", now).Return(entities.FreightRate{
			WarehouseID: "wh-a", RatePerLb: 0.25, ValidUntil: now.Add(96 * time.Hour),
		}, nil)

		var headerID string
		insertErr := errors.New("batch write failed")
		sheets.EXPECT().CreateHeader(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PriceSheet) (entities.PriceSheet, error) {
				headerID = s.ID
				return s, nil
			},
		)
		sheets.EXPECT().BulkInsertItems(gomock.Any(), gomock.Any()).Return(insertErr)
		sheets.EXPECT().DeleteHeader(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != headerID {
					t.Fatalf("compensation deleted wrong header: %s != %s", id, headerID)
				}
				return nil
			},
		)

		req := validSheetRequest()
		req.ProductIDs = []string{"p-1"}
		_, err := uc.Create(context.Background(), req)
		if !errors.Is(err, insertErr) {
			t.Fatalf("expected underlying insert error, got %v", err)
		}
	})

	t.Run("failed compensation still surfaces the insert error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		rates := mock_interfaces.NewMockIFreightRateRepository(ctrl)
		uc := NewPriceSheetUseCase(sheets, products, rates)
		uc.now = func() time.Time { return now }

		products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]entities.Product{
			{ID: "p-1", CostPerLb: 2.50, WarehouseID: "wh-a"},
		}, nil)
		rates.EXPECT().NewestForLane(gomock.Any(), "wh-a", "zone-se", now).Return(entities.FreightRate{
			WarehouseID: "wh-a", RatePerLb: 0.25, ValidUntil: now.Add(96 * time.Hour),
		}, nil)

		insertErr := errors.New("batch write failed")
		sheets.EXPECT().CreateHeader(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PriceSheet) (entities.PriceSheet, error) { return s, nil },
		)
		sheets.EXPECT().BulkInsertItems(gomock.Any(), gomock.Any()).Return(insertErr)
		sheets.EXPECT().DeleteHeader(gomock.Any(), gomock.Any()).Return(errors.New("delete failed too"))

		req := validSheetRequest()
		req.ProductIDs = []string{"p-1"}
		if _, err := uc.Create(context.Background(), req); !errors.Is(err, insertErr) {
			t.Fatalf("expected underlying insert error, got %v", err)
		}
	})
}

func TestPriceSheetUseCase_Transitions(t *testing.T) {
	t.Run("publish draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
		uc := NewPriceSheetUseCase(sheets, nil, nil)

		sheets.EXPECT().UpdateStatus(gomock.Any(), "ps-1", entities.PriceSheetStatusDraft, entities.PriceSheetStatusPublished).
			Return(entities.PriceSheet{ID: "ps-1", Status: entities.PriceSheetStatusPublished}, nil)

		res, err := uc.Publish(context.Background(), "ps-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PriceSheetStatusPublished {
			t.Fatalf("unexpected status: %+v", res)
		}
	})

	t.Run("publish already published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
		uc := NewPriceSheetUseCase(sheets, nil, nil)

		sheets.EXPECT().UpdateStatus(gomock.Any(), "ps-1", entities.PriceSheetStatusDraft, entities.PriceSheetStatusPublished).
			Return(entities.PriceSheet{}, nil)
		sheets.EXPECT().GetByID(gomock.Any(), "ps-1").
			Return(entities.PriceSheet{ID: "ps-1", Status: entities.PriceSheetStatusPublished}, nil)

		if _, err := uc.Publish(context.Background(), "ps-1"); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("archive missing sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
		uc := NewPriceSheetUseCase(sheets, nil, nil)

		sheets.EXPECT().UpdateStatus(gomock.Any(), "ps-x", entities.PriceSheetStatusPublished, entities.PriceSheetStatusArchived).
			Return(entities.PriceSheet{}, nil)
		sheets.EXPECT().GetByID(gomock.Any(), "ps-x").Return(entities.PriceSheet{}, nil)

		if _, err := uc.Archive(context.Background(), "ps-x"); !errors.Is(err, ErrPriceSheetNotFound) {
			t.Fatalf("expected ErrPriceSheetNotFound, got %v", err)
		}
	})
}

func TestPriceSheetUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sheets := mock_interfaces.NewMockIPriceSheetRepository(ctrl)
	uc := NewPriceSheetUseCase(sheets, nil, nil)

	sheets.EXPECT().List(gomock.Any(), 20, "").Return([]entities.PriceSheet{{ID: "ps-1"}}, "next", nil)

	res, cursor, err := uc.List(context.Background(), 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || cursor != "next" {
		t.Fatalf("unexpected page: %v %q", res, cursor)
	}
}
