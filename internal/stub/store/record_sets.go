package store

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/google/uuid"
	"github.com/jroosing/awsrest/internal/dnsname"
	"github.com/jroosing/awsrest/internal/route53"
)

// RecordKey identifies one record set inside a zone. Name is stored lowercase
// with a trailing dot.
type RecordKey struct {
	Name          string
	Type          string
	SetIdentifier string
}

func (k RecordKey) String() string {
	if k.SetIdentifier == "" {
		return k.Name + " " + k.Type
	}
	return k.Name + " " + k.Type + " (" + k.SetIdentifier + ")"
}

func (k RecordKey) compare(o RecordKey) int {
	return cmp.Or(
		strings.Compare(k.Name, o.Name),
		strings.Compare(k.Type, o.Type),
		strings.Compare(k.SetIdentifier, o.SetIdentifier),
	)
}

// CanonicalName is the stored form of a record name.
func CanonicalName(name string) string {
	return dnsname.Fqdn(dnsname.Normalize(name))
}

// KeyOf returns the key rrs is stored under.
func KeyOf(rrs *route53.ResourceRecordSet) RecordKey {
	return RecordKey{
		Name:          CanonicalName(aws.StringValue(rrs.Name)),
		Type:          aws.StringValue(rrs.Type),
		SetIdentifier: aws.StringValue(rrs.SetIdentifier),
	}
}

// ChangeError reports which change of a batch failed and why.
type ChangeError struct {
	Index int
	Key   RecordKey
	Err   error
}

func (e *ChangeError) Error() string {
	return fmt.Sprintf("change %d (%s): %v", e.Index, e.Key, e.Err)
}

func (e *ChangeError) Unwrap() error { return e.Err }

// ApplyChangeBatch applies every change of batch to zoneID in one
// transaction. CREATE fails on an existing record set, DELETE on a missing
// one, UPSERT always succeeds. Any failure leaves the zone untouched.
func (s *Store) ApplyChangeBatch(ctx context.Context, zoneID string, batch *route53.ChangeBatch) (*route53.ChangeInfo, error) {
	if batch == nil {
		return nil, errors.New("nil change batch")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, ch := range batch.Changes {
		if ch == nil || ch.ResourceRecordSet == nil {
			return nil, &ChangeError{Index: i, Err: errors.New("missing resource record set")}
		}
		if err := s.applyChange(ctx, tx, zoneID, ch); err != nil {
			return nil, &ChangeError{Index: i, Key: KeyOf(ch.ResourceRecordSet), Err: err}
		}
	}

	info := new(route53.ChangeInfo).
		SetID("/change/" + newChangeID()).
		SetStatus(route53.ChangeStatusInsync).
		SetSubmittedAt(time.Now().UTC().Truncate(time.Millisecond))
	info.Comment = batch.Comment

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO changes (id, zone_id, status, comment, submitted_at)
		VALUES (?, ?, ?, ?, ?)
	`, *info.ID, zoneID, *info.Status, aws.StringValue(info.Comment), info.SubmittedAt.Format(time.RFC3339Nano)); err != nil {
		return nil, fmt.Errorf("failed to record change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit change batch: %w", err)
	}
	return info, nil
}

func (s *Store) applyChange(ctx context.Context, tx *sql.Tx, zoneID string, ch *route53.Change) error {
	k := KeyOf(ch.ResourceRecordSet)

	var exists bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM record_sets
		WHERE zone_id = ? AND name = ? AND type = ? AND set_identifier = ?)
	`, zoneID, k.Name, k.Type, k.SetIdentifier).Scan(&exists); err != nil {
		return fmt.Errorf("failed to query record set: %w", err)
	}

	switch route53.ChangeAction(aws.StringValue(ch.Action)) {
	case route53.ChangeActionCreate:
		if exists {
			return ErrAlreadyExists
		}
	case route53.ChangeActionDelete:
		if !exists {
			return ErrNotFound
		}
		_, err := tx.ExecContext(ctx, `
			DELETE FROM record_sets
			WHERE zone_id = ? AND name = ? AND type = ? AND set_identifier = ?
		`, zoneID, k.Name, k.Type, k.SetIdentifier)
		if err != nil {
			return fmt.Errorf("failed to delete record set: %w", err)
		}
		return nil
	case route53.ChangeActionUpsert:
	default:
		return fmt.Errorf("unknown action %q", aws.StringValue(ch.Action))
	}

	rrs := ch.ResourceRecordSet.Clone().SetName(k.Name)
	body, err := route53.EncodeResourceRecordSet(s.xmlFactory, rrs)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO record_sets (zone_id, name, type, set_identifier, body, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(zone_id, name, type, set_identifier) DO UPDATE SET
			body = excluded.body,
			updated_at = CURRENT_TIMESTAMP
	`, zoneID, k.Name, k.Type, k.SetIdentifier, string(body))
	if err != nil {
		return fmt.Errorf("failed to store record set: %w", err)
	}
	return nil
}

// ListRecordSets returns up to limit record sets of zoneID ordered by name,
// type and set identifier, starting at the first key not below from. next is
// the key of the first record set left out, or nil when the listing is
// complete.
func (s *Store) ListRecordSets(ctx context.Context, zoneID string, from RecordKey, limit int) (sets []*route53.ResourceRecordSet, next *RecordKey, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.conn.QueryContext(ctx, `
		SELECT name, type, set_identifier, body FROM record_sets
		WHERE zone_id = ?
		ORDER BY name, type, set_identifier
	`, zoneID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query record sets: %w", err)
	}
	defer rows.Close()

	sets = []*route53.ResourceRecordSet{}
	for rows.Next() {
		var k RecordKey
		var body string
		if err := rows.Scan(&k.Name, &k.Type, &k.SetIdentifier, &body); err != nil {
			return nil, nil, fmt.Errorf("failed to scan record set: %w", err)
		}
		if k.compare(from) < 0 {
			continue
		}
		if limit > 0 && len(sets) == limit {
			next = &k
			break
		}
		rrs, err := route53.UnmarshalResourceRecordSet([]byte(body))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode record set %s: %w", k, err)
		}
		sets = append(sets, rrs)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate record sets: %w", err)
	}
	return sets, next, nil
}

// newChangeID returns an identifier shaped like Route 53's: "C" followed by
// 13 uppercase alphanumerics.
func newChangeID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "C" + id[:13]
}
