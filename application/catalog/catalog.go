package catalog

import (
	"context"

	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	catalogrepo "github.com/xchain/logitrack/repository/catalog"
	"github.com/xchain/logitrack/utils/errors"
	"github.com/xchain/logitrack/utils/logger"
	"go.uber.org/zap"
)

// CatalogApp is the read-only product surface.
type CatalogApp interface {
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
}

type catalogAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo}
}

func (c *catalogAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	product, err := c.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] get product", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return product, nil
}

func (c *catalogAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	items, total, err := c.catalogRepo.ListProducts(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}
