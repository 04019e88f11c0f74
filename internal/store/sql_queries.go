package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-registry/models"
)

const usersTable = "users"

var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone_number",
	"department",
	"position",
	"hire_date",
	"active",
	"created_at",
	"updated_at",
}

func (db *DB) selectActiveUsers() sq.SelectBuilder {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"active": true})
}

func (db *DB) selectActiveUserByID(id int64, forUpdate bool) sq.SelectBuilder {
	q := db.selectActiveUsers().Where(sq.Eq{"id": id})
	if forUpdate && db.lockRows {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

// countEmailHolders counts records other than exceptID holding email.
// Inactive records are included only when includeInactive is set.
func (db *DB) countEmailHolders(email string, exceptID int64, includeInactive bool) sq.SelectBuilder {
	q := db.builder.
		Select("COUNT(*)").
		From(usersTable).
		Where("LOWER(email) = ?", strings.ToLower(email))
	if exceptID > 0 {
		q = q.Where(sq.NotEq{"id": exceptID})
	}
	if !includeInactive {
		q = q.Where(sq.Eq{"active": true})
	}
	return q
}

func (db *DB) insertUser(user models.User) sq.InsertBuilder {
	return db.builder.
		Insert(usersTable).
		Columns("first_name", "last_name", "email", "phone_number", "department", "position", "hire_date", "active", "created_at").
		Values(user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.Department, user.Position, user.HireDate, true, user.CreatedAt).
		Suffix("RETURNING id")
}

// updateUser sets the present patch fields and updated_at.
func (db *DB) updateUser(id int64, patch models.UserPatch, now time.Time) sq.UpdateBuilder {
	q := db.builder.Update(usersTable)
	if patch.FirstName != nil {
		q = q.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		q = q.Set("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		q = q.Set("email", *patch.Email)
	}
	if patch.PhoneNumber != nil {
		q = q.Set("phone_number", *patch.PhoneNumber)
	}
	if patch.Department != nil {
		q = q.Set("department", *patch.Department)
	}
	if patch.Position != nil {
		q = q.Set("position", *patch.Position)
	}
	if patch.HireDate != nil {
		q = q.Set("hire_date", *patch.HireDate)
	}

	return q.Set("updated_at", now).Where(sq.Eq{"id": id})
}

func (db *DB) deactivateUser(id int64, now time.Time) sq.UpdateBuilder {
	return db.builder.
		Update(usersTable).
		Set("active", false).
		Set("updated_at", now).
		Where(sq.Eq{"id": id})
}
