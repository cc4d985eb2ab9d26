package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserFullName extracts the acting user's display name from the Gin
// context. New bills and registrations are stamped with it.
func GetUserFullName(c *gin.Context) string {
	name, exists := c.Get("user_full_name")
	if !exists {
		return ""
	}
	fullName, ok := name.(string)
	if !ok {
		return ""
	}
	return fullName
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	roleVal, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, ok := roleVal.(string)
	if !ok {
		return ""
	}
	return role
}

// IsAdmin checks if the acting user holds the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == "admin"
}
