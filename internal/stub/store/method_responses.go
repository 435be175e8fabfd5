package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jroosing/awsrest/internal/apigateway"
)

// MethodKey identifies one method response.
type MethodKey struct {
	RestAPIID  string
	ResourceID string
	HTTPMethod string
	StatusCode string
}

func (k MethodKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.RestAPIID, k.ResourceID, k.HTTPMethod, k.StatusCode)
}

// GetMethodResponse returns the stored method response or ErrNotFound.
func (s *Store) GetMethodResponse(ctx context.Context, k MethodKey) (*apigateway.MethodResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var body string
	err := s.conn.QueryRowContext(ctx, `
		SELECT body FROM method_responses
		WHERE rest_api_id = ? AND resource_id = ? AND http_method = ? AND status_code = ?
	`, k.RestAPIID, k.ResourceID, k.HTTPMethod, k.StatusCode).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("method response %s: %w", k, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query method response %s: %w", k, err)
	}

	mr, err := apigateway.UnmarshalMethodResponse([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode method response %s: %w", k, err)
	}
	return mr, nil
}

// PutMethodResponse creates or replaces the method response at k. The stored
// status code always matches the key.
func (s *Store) PutMethodResponse(ctx context.Context, k MethodKey, mr *apigateway.MethodResponse) (*apigateway.MethodResponse, error) {
	if mr = mr.Clone(); mr == nil {
		mr = &apigateway.MethodResponse{}
	}
	mr.SetStatusCode(k.StatusCode)

	body, err := apigateway.EncodeMethodResponse(s.jsonFactory, mr)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO method_responses (rest_api_id, resource_id, http_method, status_code, body, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(rest_api_id, resource_id, http_method, status_code) DO UPDATE SET
			body = excluded.body,
			updated_at = CURRENT_TIMESTAMP
	`, k.RestAPIID, k.ResourceID, k.HTTPMethod, k.StatusCode, string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to store method response %s: %w", k, err)
	}
	return mr, nil
}

// DeleteMethodResponse removes the method response at k or returns
// ErrNotFound.
func (s *Store) DeleteMethodResponse(ctx context.Context, k MethodKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.ExecContext(ctx, `
		DELETE FROM method_responses
		WHERE rest_api_id = ? AND resource_id = ? AND http_method = ? AND status_code = ?
	`, k.RestAPIID, k.ResourceID, k.HTTPMethod, k.StatusCode)
	if err != nil {
		return fmt.Errorf("failed to delete method response %s: %w", k, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete method response %s: %w", k, err)
	}
	if n == 0 {
		return fmt.Errorf("method response %s: %w", k, ErrNotFound)
	}
	return nil
}

// UpdateMethodResponse loads the method response at k, passes it to update
// and stores the result, all in one transaction. A missing row yields
// ErrNotFound; an update error aborts without writing.
func (s *Store) UpdateMethodResponse(ctx context.Context, k MethodKey, update func(*apigateway.MethodResponse) (*apigateway.MethodResponse, error)) (*apigateway.MethodResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var body string
	err = tx.QueryRowContext(ctx, `
		SELECT body FROM method_responses
		WHERE rest_api_id = ? AND resource_id = ? AND http_method = ? AND status_code = ?
	`, k.RestAPIID, k.ResourceID, k.HTTPMethod, k.StatusCode).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("method response %s: %w", k, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query method response %s: %w", k, err)
	}

	current, err := apigateway.UnmarshalMethodResponse([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode method response %s: %w", k, err)
	}
	next, err := update(current)
	if err != nil {
		return nil, err
	}
	if next = next.Clone(); next == nil {
		next = &apigateway.MethodResponse{}
	}
	next.SetStatusCode(k.StatusCode)

	encoded, err := apigateway.EncodeMethodResponse(s.jsonFactory, next)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE method_responses SET body = ?, updated_at = CURRENT_TIMESTAMP
		WHERE rest_api_id = ? AND resource_id = ? AND http_method = ? AND status_code = ?
	`, string(encoded), k.RestAPIID, k.ResourceID, k.HTTPMethod, k.StatusCode); err != nil {
		return nil, fmt.Errorf("failed to update method response %s: %w", k, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit method response %s: %w", k, err)
	}
	return next, nil
}
