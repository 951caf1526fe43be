package product

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	productModel "terminal-terrace/catalog-service/internal/model/product"
	"terminal-terrace/catalog-service/internal/sanitize"
)

// 三列任意一列包含搜索词即命中
const searchCondition = "LOWER(title) LIKE ? ESCAPE '" + sanitize.LikeEscape + "'" +
	" OR LOWER(description) LIKE ? ESCAPE '" + sanitize.LikeEscape + "'" +
	" OR LOWER(category) LIKE ? ESCAPE '" + sanitize.LikeEscape + "'"

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	Create(ctx context.Context, p *productModel.Product) error
	List(ctx context.Context) ([]productModel.Product, error)
	GetByID(ctx context.Context, id uint) (*productModel.Product, error)
	Search(ctx context.Context, term string) ([]productModel.Product, error)
}

type productRepository struct {
	db   *gorm.DB
	fold sanitize.Fold
}

// NewProductRepository 创建 Repository 实例
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db, fold: foldFor(db)}
}

// foldFor 搜索词的小写方式必须与数据库 LOWER() 一致
// SQLite 只处理 ASCII，PostgreSQL / MySQL 处理 Unicode
func foldFor(db *gorm.DB) sanitize.Fold {
	if db.Dialector.Name() == "sqlite" {
		return sanitize.FoldASCII
	}
	return sanitize.FoldUnicode
}

// Create 插入一条商品，ID 由数据库分配
func (r *productRepository) Create(ctx context.Context, p *productModel.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}
	return nil
}

// List 全部商品，按 id 升序
func (r *productRepository) List(ctx context.Context) ([]productModel.Product, error) {
	products := []productModel.Product{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	return products, nil
}

// GetByID 不存在时返回 ErrProductNotFound
func (r *productRepository) GetByID(ctx context.Context, id uint) (*productModel.Product, error) {
	var p productModel.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}
	return &p, nil
}

// Search 标题、描述、分类的子串匹配（忽略大小写，规则同数据库 LOWER()），空搜索词返回全部
func (r *productRepository) Search(ctx context.Context, term string) ([]productModel.Product, error) {
	pattern := sanitize.LikePattern(term, r.fold)

	products := []productModel.Product{}
	err := r.db.WithContext(ctx).
		Where(searchCondition, pattern, pattern, pattern).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}
	return products, nil
}
