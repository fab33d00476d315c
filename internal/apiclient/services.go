// BYH Music Store | 2026
// services.go

package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/byhstore/byh-store/internal/admin"
	"github.com/byhstore/byh-store/internal/auth"
	"github.com/byhstore/byh-store/internal/banner"
	"github.com/byhstore/byh-store/internal/catalog"
	"github.com/byhstore/byh-store/internal/customer"
	"github.com/byhstore/byh-store/internal/order"
	"github.com/byhstore/byh-store/internal/promotion"
)

// The typed surface below maps 1:1 onto the REST endpoints; response
// shapes are the backend's own DTOs.

func (c *Client) Login(
	ctx context.Context,
	email, password string,
) (*auth.AuthResponse, error) {
	var resp auth.AuthResponse
	err := c.Request(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.Request(ctx, http.MethodPost, "/api/auth/logout", map[string]string{
		"refresh_token": refreshToken,
	}, nil)
}

func (c *Client) RefreshSession(
	ctx context.Context,
	refreshToken string,
) (*auth.AuthResponse, error) {
	var resp auth.AuthResponse
	err := c.Request(
		ctx,
		http.MethodPost,
		"/api/auth/refresh",
		map[string]string{"refresh_token": refreshToken},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListProducts(
	ctx context.Context,
) ([]catalog.ProductResponse, error) {
	var products []catalog.ProductResponse
	err := c.Request(ctx, http.MethodGet, "/api/products", nil, &products)
	return products, err
}

func (c *Client) GetProduct(
	ctx context.Context,
	id string,
) (*catalog.ProductResponse, error) {
	var product catalog.ProductResponse
	err := c.Request(ctx, http.MethodGet, "/api/products/"+id, nil, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(
	ctx context.Context,
	fields map[string]string,
) (*catalog.ProductResponse, error) {
	body, contentType, err := buildMultipart(fields)
	if err != nil {
		return nil, err
	}

	var product catalog.ProductResponse
	err = c.RequestMultipart(
		ctx,
		http.MethodPost,
		"/api/products",
		contentType,
		body,
		&product,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(
	ctx context.Context,
	id string,
	fields map[string]string,
) (*catalog.ProductResponse, error) {
	body, contentType, err := buildMultipart(fields)
	if err != nil {
		return nil, err
	}

	var product catalog.ProductResponse
	err = c.RequestMultipart(
		ctx,
		http.MethodPut,
		"/api/products/"+id,
		contentType,
		body,
		&product,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(
	ctx context.Context,
	id string,
) (*catalog.DeleteProductResponse, error) {
	var resp catalog.DeleteProductResponse
	err := c.Request(
		ctx,
		http.MethodDelete,
		"/api/products/"+id,
		nil,
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListCustomers(
	ctx context.Context,
) ([]customer.UserResponse, error) {
	var users []customer.UserResponse
	err := c.Request(ctx, http.MethodGet, "/api/users", nil, &users)
	return users, err
}

func (c *Client) CreateCustomer(
	ctx context.Context,
	req customer.CreateCustomerRequest,
) (*customer.UserResponse, error) {
	var user customer.UserResponse
	err := c.Request(ctx, http.MethodPost, "/api/users", req, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListPromotions(
	ctx context.Context,
) ([]promotion.PromotionResponse, error) {
	var promotions []promotion.PromotionResponse
	err := c.Request(ctx, http.MethodGet, "/api/promotions", nil, &promotions)
	return promotions, err
}

func (c *Client) ListActivePromotions(
	ctx context.Context,
) ([]promotion.PromotionResponse, error) {
	var promotions []promotion.PromotionResponse
	err := c.Request(
		ctx,
		http.MethodGet,
		"/api/promotions/active",
		nil,
		&promotions,
	)
	return promotions, err
}

func (c *Client) CreatePromotion(
	ctx context.Context,
	req promotion.PromotionRequest,
) (*promotion.PromotionResponse, error) {
	var resp promotion.PromotionResponse
	err := c.Request(ctx, http.MethodPost, "/api/promotions", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListBanners(
	ctx context.Context,
) ([]banner.BannerResponse, error) {
	var banners []banner.BannerResponse
	err := c.Request(ctx, http.MethodGet, "/api/banners", nil, &banners)
	return banners, err
}

func (c *Client) ListActiveBanners(
	ctx context.Context,
) ([]banner.BannerResponse, error) {
	var banners []banner.BannerResponse
	err := c.Request(
		ctx,
		http.MethodGet,
		"/api/banners/active",
		nil,
		&banners,
	)
	return banners, err
}

func (c *Client) CreateBanner(
	ctx context.Context,
	fields map[string]string,
) (*banner.BannerResponse, error) {
	body, contentType, err := buildMultipart(fields)
	if err != nil {
		return nil, err
	}

	var resp banner.BannerResponse
	err = c.RequestMultipart(
		ctx,
		http.MethodPost,
		"/api/banners",
		contentType,
		body,
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]order.OrderResponse, error) {
	var orders []order.OrderResponse
	err := c.Request(ctx, http.MethodGet, "/api/orders", nil, &orders)
	return orders, err
}

func (c *Client) GetSettings(ctx context.Context) (map[string]string, error) {
	var values map[string]string
	err := c.Request(ctx, http.MethodGet, "/api/settings", nil, &values)
	return values, err
}

func (c *Client) UpdateSettings(
	ctx context.Context,
	values map[string]string,
) (map[string]string, error) {
	var merged map[string]string
	err := c.Request(ctx, http.MethodPut, "/api/settings", values, &merged)
	return merged, err
}

func (c *Client) GetStats(
	ctx context.Context,
) (*admin.SystemStatsResponse, error) {
	var stats admin.SystemStatsResponse
	err := c.Request(ctx, http.MethodGet, "/api/admin/stats", nil, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func buildMultipart(
	fields map[string]string,
) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("write form field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}
