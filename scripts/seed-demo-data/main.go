// Seeds a development database with a product type, a batch of demo
// designs and a handful of fake orders.
//
// Usage: DB_PATH=./db/famoussince.db go run ./scripts/seed-demo-data
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/famoussince/storefront/storage"
	"github.com/famoussince/storefront/storage/db"
	"github.com/oklog/ulid/v2"
)

const (
	numDesigns = 12
	numOrders  = 8
)

var sizes = []string{"S", "M", "L", "XL"}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/famoussince.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	queries := store.Queries

	productType, err := seedProductType(ctx, queries)
	if err != nil {
		log.Fatalf("failed to seed product type: %v", err)
	}
	fmt.Printf("product type: %s (%s)\n", productType.Name, productType.ID)

	productIDs, err := seedDesigns(ctx, queries, productType)
	if err != nil {
		log.Fatalf("failed to seed designs: %v", err)
	}
	fmt.Printf("designs: %d\n", len(productIDs))

	if err := seedOrders(ctx, queries, productIDs); err != nil {
		log.Fatalf("failed to seed orders: %v", err)
	}
	fmt.Printf("orders: %d\n", numOrders)
}

func seedProductType(ctx context.Context, queries *db.Queries) (db.ProductType, error) {
	if existing, err := queries.GetDefaultProductType(ctx); err == nil {
		return existing, nil
	}

	productType, err := queries.CreateProductType(ctx, db.CreateProductTypeParams{
		ID:             ulid.Make().String(),
		Name:           "Classic Tee",
		BasePriceCents: 2800,
		IsActive:       1,
		IsDefault:      1,
	})
	if err != nil {
		return productType, err
	}

	for i, size := range sizes {
		if _, err := queries.CreateProductSize(ctx, db.CreateProductSizeParams{
			ID:            ulid.Make().String(),
			ProductTypeID: productType.ID,
			Size:          size,
			SizeOrder:     int64(i),
		}); err != nil {
			return productType, err
		}
	}
	return productType, nil
}

func seedDesigns(ctx context.Context, queries *db.Queries, productType db.ProductType) ([]string, error) {
	ids := make([]string, 0, numDesigns)
	for i := 0; i < numDesigns; i++ {
		word := gofakeit.HipsterWord()
		phrase := fmt.Sprintf("%s%s %d", strings.ToUpper(word[:1]), word[1:], gofakeit.Number(1970, 2020))

		product, err := queries.CreateProduct(ctx, db.CreateProductParams{
			ID:             ulid.Make().String(),
			Name:           "FAMOUS SINCE " + phrase,
			Description:    phrase,
			BasePriceCents: productType.BasePriceCents,
			ProductTypeID:  productType.ID,
			IsCustom:       1,
		})
		if err != nil {
			return ids, err
		}

		for _, size := range sizes {
			if _, err := queries.CreateVariant(ctx, db.CreateVariantParams{
				ID:            ulid.Make().String(),
				ProductID:     product.ID,
				Size:          size,
				Color:         "Black",
				PriceCents:    productType.BasePriceCents,
				StockQuantity: int64(gofakeit.Number(5, 120)),
			}); err != nil {
				return ids, err
			}
		}
		ids = append(ids, product.ID)
	}
	return ids, nil
}

func seedOrders(ctx context.Context, queries *db.Queries, productIDs []string) error {
	statuses := []string{"pending", "printing", "shipped", "delivered"}

	for i := 0; i < numOrders; i++ {
		addr := gofakeit.Address()
		qty := int64(gofakeit.Number(1, 3))
		price := int64(2800)
		subtotal := price * qty
		tax := subtotal * 9 / 100
		shipping := int64(1000)

		order, err := queries.CreateOrder(ctx, db.CreateOrderParams{
			ID:                    ulid.Make().String(),
			CustomerEmail:         gofakeit.Email(),
			CustomerName:          gofakeit.Name(),
			CustomerPhone:         sql.NullString{String: gofakeit.Phone(), Valid: true},
			ShippingAddressLine1:  addr.Street,
			ShippingCity:          addr.City,
			ShippingState:         addr.State,
			ShippingPostalCode:    addr.Zip,
			ShippingCountry:       "US",
			BillingAddressLine1:   addr.Street,
			BillingCity:           addr.City,
			BillingState:          addr.State,
			BillingPostalCode:     addr.Zip,
			BillingCountry:        "US",
			ShippingMethod:        "standard",
			SubtotalCents:         subtotal,
			TaxCents:              tax,
			ShippingCents:         shipping,
			TotalCents:            subtotal + tax + shipping,
			StripePaymentIntentID: sql.NullString{String: "pi_seed_" + ulid.Make().String(), Valid: true},
			Status:                statuses[rand.Intn(len(statuses))],
			PaymentStatus:         "paid",
		})
		if err != nil {
			return err
		}

		productID := productIDs[rand.Intn(len(productIDs))]
		if _, err := queries.CreateOrderItem(ctx, db.CreateOrderItemParams{
			ID:          ulid.Make().String(),
			OrderID:     order.ID,
			ProductID:   sql.NullString{String: productID, Valid: true},
			ProductName: "FAMOUS SINCE demo design",
			Size:        sql.NullString{String: sizes[rand.Intn(len(sizes))], Valid: true},
			Color:       sql.NullString{String: "Black", Valid: true},
			Quantity:    qty,
			PriceCents:  price,
			TotalCents:  subtotal,
		}); err != nil {
			return err
		}
	}
	return nil
}
