package service

import (
	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/internal/core/ports"
)

// NewAccountCache builds the account cache. Update may change everything but
// the id and the opening date.
func NewAccountCache(repo ports.AccountRepository) *cache.Cache[domain.Account] {
	return cache.New[domain.Account](repo, func(current, incoming domain.Account) domain.Account {
		current.Currency = incoming.Currency
		current.Balance = incoming.Balance
		current.BankID = incoming.BankID
		current.UserID = incoming.UserID
		return current
	})
}

// NewBankCache builds the bank cache.
func NewBankCache(repo ports.BankRepository) *cache.Cache[domain.Bank] {
	return cache.New[domain.Bank](repo, func(current, incoming domain.Bank) domain.Bank {
		current.Name = incoming.Name
		return current
	})
}

// NewUserCache builds the user cache.
func NewUserCache(repo ports.UserRepository) *cache.Cache[domain.User] {
	return cache.New[domain.User](repo, func(current, incoming domain.User) domain.User {
		current.FullName = incoming.FullName
		return current
	})
}

// NewTransactionCache builds the transaction log cache. Records are immutable
// apart from timestamp correction.
func NewTransactionCache(repo ports.TransactionRepository) *cache.Cache[domain.Transaction] {
	return cache.New[domain.Transaction](repo, func(current, incoming domain.Transaction) domain.Transaction {
		current.Date = incoming.Date
		return current
	})
}
