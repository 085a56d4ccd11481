// Package errors provides custom error types for order-related operations.
package errors

import "errors"

var ErrOrderNotFound = errors.New("order not found")
var ErrFailedToFindOrder = errors.New("failed to find order")
var ErrFailedToListOrders = errors.New("failed to list orders")

var ErrCreateOrder = errors.New("failed to create order")
var ErrDuplicateOrderID = errors.New("order with this id already exists")
var ErrUpdateOrder = errors.New("failed to update order status")
var ErrUnknownStatus = errors.New("unknown order status")

var ErrSeedOrders = errors.New("failed to seed orders")
var ErrClearOrders = errors.New("failed to clear orders")

var ErrTransactionBegin = errors.New("failed to begin transaction")
var ErrTransactionCommit = errors.New("failed to commit transaction")
var ErrTransactionRollback = errors.New("failed to rollback transaction")
