package upstream

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// Identity 随机身份 API 返回的一条用户
type Identity struct {
	Username string
	Password string
	Email    string
}

type randomUserResponse struct {
	Results []struct {
		Email string `json:"email"`
		Login struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"login"`
	} `json:"results"`
}

// RandomUserClient randomuser.me 客户端
type RandomUserClient struct {
	url    string
	client *http.Client
}

func NewRandomUserClient(url string, client *http.Client) *RandomUserClient {
	return &RandomUserClient{url: url, client: client}
}

// FetchIdentity 请求一次，取 results[0]
func (c *RandomUserClient) FetchIdentity(ctx context.Context) (*Identity, error) {
	var body randomUserResponse
	if err := getJSON(ctx, c.client, c.url, &body); err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, errors.Errorf("GET %s: empty results", c.url)
	}

	r := body.Results[0]
	if r.Login.Username == "" {
		return nil, errors.Errorf("GET %s: identity without username", c.url)
	}

	return &Identity{
		Username: r.Login.Username,
		Password: r.Login.Password,
		Email:    r.Email,
	}, nil
}
