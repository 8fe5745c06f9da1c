package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romsper/testing-playground-client/internal/payload"
)

func TestAuthService_LoginDecodesTokenBundle(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"id":7,"accessToken":"at","refreshToken":"rt","createdAt":1700000000000,"expireInMs":3600000}`))
	}), "")

	resp, apiErr := NewAuthService(client).Login(context.Background(), payload.LoginRequest{
		Email:    "user@example.com",
		Password: "secret",
	})
	require.Nil(t, apiErr)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "at", resp.AccessToken)
	assert.Equal(t, "rt", resp.RefreshToken)
	assert.Equal(t, int64(3600000), resp.ExpireInMS)
}

func TestProductService_ListBuildsQuery(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"id":1,"name":"mug","description":"a mug","price":9.5}]`))
	}), "")

	products, apiErr := NewProductService(client).List(context.Background(), 5, 10)
	require.Nil(t, apiErr)

	require.Len(t, products, 1)
	assert.Equal(t, "mug", products[0].Name)
}

func TestUserService_MeUsesPost(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":7,"username":"romsper","email":"user@example.com"}`))
	}), "tok")

	user, apiErr := NewUserService(client).Me(context.Background())
	require.Nil(t, apiErr)

	assert.Equal(t, "romsper", user.Username)
}

func TestOrderService_ListForCurrentUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/user", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":3,"userId":7,"orderStatus":"CREATED","totalAmount":19.0}]`))
	}), "tok")

	orders, apiErr := NewOrderService(client).ListForCurrentUser(context.Background())
	require.Nil(t, apiErr)

	require.Len(t, orders, 1)
	assert.Equal(t, "CREATED", orders[0].OrderStatus)
}

func TestOrderService_CreatePropagatesClientError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	srv.Close()

	_, apiErr := NewOrderService(client).Create(context.Background(), payload.CreateOrderRequest{
		UserID:   7,
		Products: []payload.CreateOrderProduct{{ID: 1}},
	})
	require.NotNil(t, apiErr)
	assert.Zero(t, apiErr.Status)
}
