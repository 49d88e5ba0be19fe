package store

import (
	"errors"

	"github.com/shishant-cloud/ClassSchedule/internal/models"
	"github.com/shishant-cloud/ClassSchedule/internal/utils"
)

var ErrUserNotFound = errors.New("user not found")

// ValidateUser returns the user matching the credentials, or ErrUserNotFound.
// Passwords are stored as bcrypt hashes.
func (s *Store) ValidateUser(username, password string) (models.User, error) {
	for _, u := range ReadAll[models.User](s, Users) {
		if u.Username == username && utils.CheckPassword(u.Password, password) {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *Store) GetUserByID(id int) (models.User, error) {
	for _, u := range ReadAll[models.User](s, Users) {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *Store) UsernameExists(username string) bool {
	for _, u := range ReadAll[models.User](s, Users) {
		if u.Username == username {
			return true
		}
	}
	return false
}

// AddStudent creates a student account with a hashed password.
func (s *Store) AddStudent(name, username, password string) (models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return Append(s, Users, func(id int) models.User {
		return models.User{
			ID:        id,
			Username:  username,
			Password:  hashed,
			Role:      models.RoleStudent,
			Name:      name,
			CreatedAt: Now(),
		}
	})
}

// SetPassword replaces a user's password with a hash of newPassword.
func (s *Store) SetPassword(userID int, newPassword string) error {
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	found := false
	err = Update(s, Users, func(users []models.User) bool {
		for i := range users {
			if users[i].ID == userID {
				users[i].Password = hashed
				found = true
				return true
			}
		}
		return false
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}
