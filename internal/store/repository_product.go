// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Every statement carries a user_id predicate, so a
// product of another user is never read or written.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateProduct inserts product for product.UserID and returns the stored
// row including the generated id and created_at.
func (p *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateProductQuery(product)
	if err != nil {
		return models.Product{}, err
	}

	var created models.Product
	if err = scanProduct(p.DB.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).
			Str("func", "productRepository.CreateProduct").
			Int64("user_id", product.UserID).
			Msg("failed to insert product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "productRepository.CreateProduct").
		Int64("user_id", created.UserID).
		Int64("product_id", created.ID).
		Msg("product created")

	return created, nil
}

// ListProducts returns every product owned by userID, newest first.
// Returns an empty slice when the user has none.
func (p *productRepository) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProductsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.ListProducts").
			Int64("user_id", userID).
			Msg("failed to execute query for listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 16)
	for rows.Next() {
		var product models.Product
		if scanErr := scanProduct(rows, &product); scanErr != nil {
			log.Err(scanErr).
				Str("func", "productRepository.ListProducts").
				Int64("user_id", userID).
				Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		products = append(products, product)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "productRepository.ListProducts").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return products, nil
}

// GetProduct returns the product only if it is owned by userID; otherwise
// [ErrProductNotFound].
func (p *productRepository) GetProduct(ctx context.Context, userID, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProductQuery(userID, productID)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err = scanProduct(p.DB.QueryRowContext(ctx, query, args...), &product); err != nil {
		if noRows(err) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).
			Str("func", "productRepository.GetProduct").
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to get product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}

// UpdateProduct runs a single UPDATE ... RETURNING that touches only the
// fields present in update.Patch. Returns [ErrNothingToUpdate] without
// touching the database for an empty patch and [ErrProductNotFound] when no
// owned row matched.
func (p *productRepository) UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(update)
	if err != nil {
		return models.Product{}, err
	}

	var updated models.Product
	if err = scanProduct(p.DB.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if noRows(err) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).
			Str("func", "productRepository.UpdateProduct").
			Int64("user_id", update.UserID).
			Int64("product_id", update.ID).
			Msg("failed to update product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "productRepository.UpdateProduct").
		Int64("user_id", update.UserID).
		Int64("product_id", update.ID).
		Msg("product updated")

	return updated, nil
}

// DeleteProduct removes an owned product in a transaction. Its files and
// notes go with it through ON DELETE CASCADE; the file records are read
// first and returned so that the caller can remove their payloads.
func (p *productRepository) DeleteProduct(ctx context.Context, userID, productID int64) (files []models.FileRecord, err error) {
	log := logger.FromContext(ctx)

	filesQuery, filesArgs, err := buildListProductFilesQuery(userID, productID)
	if err != nil {
		return nil, err
	}
	deleteQuery, deleteArgs, err := buildDeleteProductQuery(userID, productID)
	if err != nil {
		return nil, err
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.DeleteProduct").
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, rollback(tx))
		}
	}()

	rows, err := tx.QueryContext(ctx, filesQuery, filesArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.DeleteProduct").
			Int64("product_id", productID).
			Msg("failed to list product files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	files, err = collectFiles(rows)
	if err != nil {
		return nil, err
	}

	var deletedID int64
	if err = tx.QueryRowContext(ctx, deleteQuery, deleteArgs...).Scan(&deletedID); err != nil {
		if noRows(err) {
			return nil, ErrProductNotFound
		}
		log.Err(err).
			Str("func", "productRepository.DeleteProduct").
			Int64("product_id", productID).
			Msg("failed to delete product")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "productRepository.DeleteProduct").
			Int64("product_id", productID).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "productRepository.DeleteProduct").
		Int64("user_id", userID).
		Int64("product_id", deletedID).
		Int("files", len(files)).
		Msg("product deleted")

	return files, nil
}
