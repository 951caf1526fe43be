package user

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	userModel "terminal-terrace/catalog-service/internal/model/user"
	"terminal-terrace/catalog-service/internal/upstream"
)

// IdentityFetcher 随机身份数据源，每次调用返回一个身份
type IdentityFetcher interface {
	FetchIdentity(ctx context.Context) (*upstream.Identity, error)
}

// GenerateResult 一批用户的写入结果
type GenerateResult struct {
	Requested int
	Inserted  int
	Skipped   int
}

// UserService 用户服务接口
type UserService interface {
	GenerateUsers(ctx context.Context) (*GenerateResult, error)
}

type userService struct {
	repo      UserRepository
	identity  IdentityFetcher
	batchSize int
	log       *logrus.Logger
}

// NewUserService 创建服务实例
func NewUserService(repo UserRepository, identity IdentityFetcher, batchSize int, log *logrus.Logger) UserService {
	return &userService{
		repo:      repo,
		identity:  identity,
		batchSize: batchSize,
		log:       log,
	}
}

// GenerateUsers 并发请求 batchSize 个身份，全部成功后再写入
// 任一请求失败则整批失败，不写入任何数据；用户名重复只跳过
func (s *userService) GenerateUsers(ctx context.Context) (*GenerateResult, error) {
	identities, err := s.fetchBatch(ctx)
	if err != nil {
		s.log.WithError(err).Error("fetch random users failed")
		return nil, errors.Wrap(err, "failed to fetch random users")
	}

	result := &GenerateResult{Requested: len(identities)}
	for _, id := range identities {
		u := &userModel.User{
			Username: id.Username,
			Email:    id.Email,
			Password: id.Password,
			IsAdmin:  0,
		}
		created, err := s.repo.Create(ctx, u)
		if err != nil {
			return nil, err
		}
		if !created {
			s.log.WithField("username", id.Username).Info("username already exists, skipped")
			result.Skipped++
			continue
		}
		result.Inserted++
	}

	s.log.WithFields(logrus.Fields{
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
	}).Info("random users generated")
	return result, nil
}

func (s *userService) fetchBatch(ctx context.Context) ([]*upstream.Identity, error) {
	g, groupCtx := errgroup.WithContext(ctx)
	identities := make([]*upstream.Identity, s.batchSize)
	for i := range identities {
		g.Go(func() error {
			id, err := s.identity.FetchIdentity(groupCtx)
			if err != nil {
				return err
			}
			identities[i] = id
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return identities, nil
}
