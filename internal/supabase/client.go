// Package supabase — клиент hosted identity/data сервиса: GoTrue (/auth/v1)
// для identity и PostgREST (/rest/v1) для profiles, content и templates.
// Вся персистентность живёт на стороне сервиса; здесь только HTTP-вызовы.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/writerai/backend/internal/config"
)

var (
	// ErrNoSession — токен пустой, просрочен или отозван: это «аноним», не сбой.
	ErrNoSession = errors.New("supabase: no active session")
	// ErrNotFound — запрошенной строки нет (профиль, шаблон).
	ErrNotFound = errors.New("supabase: row not found")
)

type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func New(cfg config.Supabase) *Client {
	return &Client{
		baseURL:    cfg.URL,
		serviceKey: cfg.ServiceKey,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// User — identity из внешнего сервиса; этой системе не принадлежит.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile — строка profiles; is_admin читается заново на каждый привилегированный запрос.
type Profile struct {
	ID               string `json:"id"`
	IsAdmin          bool   `json:"is_admin"`
	StripeCustomerID string `json:"stripe_customer_id"`
}

// ContentItem — сгенерированный документ пользователя.
type ContentItem struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// Template — шаблон генерации контента.
type Template struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UserFromToken резолвит identity по access-токену пользователя.
// 401/403 от сервиса — это ErrNoSession (аноним); остальные сбои — ошибка транспорта.
func (c *Client) UserFromToken(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase auth: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrNoSession
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("supabase auth http %d: %s", resp.StatusCode, string(raw))
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("supabase auth decode error: %w", err)
	}
	if u.ID == "" {
		return nil, ErrNoSession
	}
	return &u, nil
}

// ProfileByID возвращает строку profiles по id пользователя; нет строки — ErrNotFound.
func (c *Client) ProfileByID(ctx context.Context, userID string) (*Profile, error) {
	query := "id=eq." + url.QueryEscape(userID) + "&select=id,is_admin,stripe_customer_id&limit=1"
	var rows []Profile
	if err := c.rest(ctx, http.MethodGet, "/rest/v1/profiles?"+query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// RecentContent возвращает последние документы пользователя (новые первыми).
func (c *Client) RecentContent(ctx context.Context, userID string, limit int) ([]ContentItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	query := fmt.Sprintf("user_id=eq.%s&select=id,user_id,title,type,created_at&order=created_at.desc&limit=%d",
		url.QueryEscape(userID), limit)
	var rows []ContentItem
	if err := c.rest(ctx, http.MethodGet, "/rest/v1/content?"+query, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ContentItem{}
	}
	return rows, nil
}

// TemplateBySlug возвращает шаблон по slug; нет строки — ErrNotFound.
func (c *Client) TemplateBySlug(ctx context.Context, slug string) (*Template, error) {
	query := "slug=eq." + url.QueryEscape(slug) + "&select=id,slug,name,description,category&limit=1"
	var rows []Template
	if err := c.rest(ctx, http.MethodGet, "/rest/v1/templates?"+query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// DeleteContent удаляет ровно одну строку content по id.
func (c *Client) DeleteContent(ctx context.Context, id string) error {
	query := "id=eq." + url.QueryEscape(id)
	return c.rest(ctx, http.MethodDelete, "/rest/v1/content?"+query, nil)
}

// rest выполняет запрос к PostgREST с service-ключом; out == nil — тело не разбирается.
func (c *Client) rest(ctx context.Context, method, pathAndQuery string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathAndQuery, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("supabase rest: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("supabase rest http %d: %s", resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("supabase rest decode error: %w", err)
	}
	return nil
}
