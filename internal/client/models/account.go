// Package models holds client-side row types for the local account cache.
package models

import "github.com/dmitrijs2005/padre/internal/accountdb"

// Account is a cached derivation recipe with its surrogate row id.
type Account struct {
	Id string
	accountdb.Account
}
