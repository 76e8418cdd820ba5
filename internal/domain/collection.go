package domain

import "slices"

// CollectionKind names a stream of full snapshots a client can subscribe to.
type CollectionKind string

const (
	CollectionRooms    CollectionKind = "rooms"
	CollectionTenants  CollectionKind = "tenants"
	CollectionPayments CollectionKind = "payments"
)

var CollectionKinds = []CollectionKind{CollectionRooms, CollectionTenants, CollectionPayments}

func ParseCollectionKind(s string) (CollectionKind, error) {
	kind := CollectionKind(s)
	if !slices.Contains(CollectionKinds, kind) {
		return "", NewValidationError("collection", "must be one of rooms tenants payments")
	}
	return kind, nil
}
