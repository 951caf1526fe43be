package product

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	productModel "terminal-terrace/catalog-service/internal/model/product"
	"terminal-terrace/catalog-service/internal/sanitize"
	"terminal-terrace/catalog-service/internal/upstream"
)

var (
	ErrInvalidID       = sanitize.ErrInvalidID
	ErrProductNotFound = stderrors.New("product not found")
)

// CatalogFetcher 商品目录数据源
type CatalogFetcher interface {
	FetchProducts(ctx context.Context) ([]upstream.CatalogItem, error)
}

// ProductService 商品服务接口
type ProductService interface {
	// 从商品目录 API 拉取并逐条写入，返回写入条数
	GenerateProducts(ctx context.Context) (int, error)

	ListProducts(ctx context.Context) ([]productModel.Product, error)

	// rawID 为路径参数原文，格式不合法时不会访问数据库
	GetProduct(ctx context.Context, rawID string) (*productModel.Product, error)

	SearchProducts(ctx context.Context, term string) ([]productModel.Product, error)
}

type productService struct {
	repo    ProductRepository
	catalog CatalogFetcher
	log     *logrus.Logger
}

// NewProductService 创建服务实例
func NewProductService(repo ProductRepository, catalog CatalogFetcher, log *logrus.Logger) ProductService {
	return &productService{
		repo:    repo,
		catalog: catalog,
		log:     log,
	}
}

// GenerateProducts 上游失败时不写入任何数据；写入中途失败则保留已写入的行
func (s *productService) GenerateProducts(ctx context.Context) (int, error) {
	items, err := s.catalog.FetchProducts(ctx)
	if err != nil {
		s.log.WithError(err).Error("fetch products from catalog failed")
		return 0, errors.Wrap(err, "failed to fetch products")
	}

	inserted := 0
	for _, item := range items {
		p := toProduct(item)
		if err := s.repo.Create(ctx, &p); err != nil {
			s.log.WithError(err).WithField("inserted", inserted).Error("insert product failed")
			return inserted, err
		}
		inserted++
	}

	s.log.WithField("inserted", inserted).Info("products generated")
	return inserted, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]productModel.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) GetProduct(ctx context.Context, rawID string) (*productModel.Product, error) {
	id, err := sanitize.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *productService) SearchProducts(ctx context.Context, term string) ([]productModel.Product, error) {
	return s.repo.Search(ctx, term)
}

// toProduct rating.rate -> rating_rate, rating.count -> rating_count
func toProduct(item upstream.CatalogItem) productModel.Product {
	return productModel.Product{
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Category:    item.Category,
		RatingRate:  item.Rating.Rate,
		RatingCount: item.Rating.Count,
	}
}
