package dto

import "time"

// EmployeeLoginRequest authenticates a bank employee.
type EmployeeLoginRequest struct {
	BankID     string `json:"bankID" binding:"required"`
	EmployeeID string `json:"employeeID" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AccountLoginRequest authenticates a customer with their pin.
type AccountLoginRequest struct {
	BankID    string `json:"bankID" binding:"required"`
	AccountID string `json:"accountID" binding:"required"`
	Pin       string `json:"pin" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
