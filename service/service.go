// Package service holds the stateless domain façades between the HTTP
// handlers and the persistence store. Every method takes the verified
// principal explicitly where authorization matters; nothing is read from
// ambient request state. Methods return (value, error) with the error kinds
// in errors.go, and handlers own the mapping to HTTP statuses.
package service

import (
	"github.com/diskusiapp/diskusi/ai"
	"github.com/diskusiapp/diskusi/model"
	"github.com/diskusiapp/diskusi/utils"
	"gorm.io/gorm"
)

// Principal is the verified identity carried through a request, constructed
// once by the auth middleware from the JWT and passed into every service
// call that needs it.
type Principal struct {
	UserID string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// Service bundles the collaborators every domain operation runs against.
// Redis is optional: a nil client turns the view caches off, which is how
// tests run.
type Service struct {
	DB    *gorm.DB
	Redis *utils.RedisClient
	AI    ai.Generator
}

func New(db *gorm.DB, redis *utils.RedisClient, generator ai.Generator) *Service {
	return &Service{DB: db, Redis: redis, AI: generator}
}
