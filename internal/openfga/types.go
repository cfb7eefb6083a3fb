// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

// Tuple is a relationship as stored by openfga, user and object carry their type prefix
type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) *Tuple {
	t := new(Tuple)
	t.User = user
	t.Relation = relation
	t.Object = object

	return t
}
