package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/xchain/logitrack/model"
	redisrepo "github.com/xchain/logitrack/repository/redis"
)

// CatalogRepository is the read surface over catalog-owned entities
// (products, warehouses, suppliers). Getters return (nil, nil) when the row
// does not exist. Product reads go through a Redis read-through cache since
// they sit on the reservation hot path.
type CatalogRepository interface {
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	ListProducts(ctx context.Context, page, perPage int) ([]model.Product, int64, error)
	GetWarehouse(ctx context.Context, id uint64) (*model.Warehouse, error)
	GetSupplier(ctx context.Context, id uint64) (*model.Supplier, error)
	InvalidateProduct(ctx context.Context, id uint64) error
}

type SQL struct {
	conn     *sqlx.DB
	cache    redisrepo.Repository
	cacheTTL time.Duration
}

func NewCatalogRepository(conn *sqlx.DB, cache redisrepo.Repository, cacheTTL time.Duration) CatalogRepository {
	return &SQL{conn: conn, cache: cache, cacheTTL: cacheTTL}
}

func productCacheKey(id uint64) string {
	return fmt.Sprintf("catalog:product:%d", id)
}

func (r *SQL) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	if cached, err := r.cache.Get(ctx, productCacheKey(id)); err == nil && cached != "" {
		var p model.Product
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			return &p, nil
		}
	}

	var p model.Product
	err := r.conn.GetContext(ctx, &p, "SELECT id, sku, name, price, active FROM product WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(&p); err == nil {
		_ = r.cache.SetWithTTL(ctx, productCacheKey(id), string(raw), r.cacheTTL)
	}
	return &p, nil
}

func (r *SQL) ListProducts(ctx context.Context, page, perPage int) ([]model.Product, int64, error) {
	offset := (page - 1) * perPage

	items := make([]model.Product, 0)
	err := r.conn.SelectContext(ctx, &items,
		"SELECT id, sku, name, price, active FROM product ORDER BY id LIMIT ? OFFSET ?", perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM product"); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) GetWarehouse(ctx context.Context, id uint64) (*model.Warehouse, error) {
	var w model.Warehouse
	err := r.conn.GetContext(ctx, &w, "SELECT id, code, name FROM warehouse WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *SQL) GetSupplier(ctx context.Context, id uint64) (*model.Supplier, error) {
	var s model.Supplier
	err := r.conn.GetContext(ctx, &s, "SELECT id, name, email FROM supplier WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) InvalidateProduct(ctx context.Context, id uint64) error {
	return r.cache.Delete(ctx, productCacheKey(id))
}
