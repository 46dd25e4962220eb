package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ValidPermissions is the fixed set of permission tags a role may carry.
var ValidPermissions = PermissionList{
	"view_orders",
	"create_orders",
	"edit_orders",
	"delete_orders",
	"view_inventory",
	"edit_inventory",
	"view_payments",
	"process_payments",
	"view_analytics",
	"manage_users",
	"manage_roles",
	"view_reports",
	"manage_settings",
	"view_tables",
	"manage_tables",
}

// PermissionList is stored as a JSON array in a single column.
type PermissionList []string

func (p PermissionList) Value() (driver.Value, error) {
	if p == nil {
		p = PermissionList{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PermissionList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = PermissionList{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("permissions: unsupported column type %T", src)
	}
}

// Valid reports whether every tag is part of the fixed enumeration.
func (p PermissionList) Valid() bool {
	for _, perm := range p {
		found := false
		for _, valid := range ValidPermissions {
			if perm == valid {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type Role struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Permissions PermissionList `gorm:"type:text" json:"permissions"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
