package memory

import (
	"context"

	"github.com/eventsphere/server/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedSampleData наполняет пустое хранилище тестовыми аккаунтами.
// Данные живут только до перезапуска процесса, поэтому сидирование
// выполняется при каждом старте.
func SeedSampleData(ctx context.Context, users UserRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	manager := &entity.User{
		Username:          "manager",
		PasswordHash:      string(hash),
		Email:             "manager@example.com",
		FirstName:         "Event",
		LastName:          "Manager",
		Role:              entity.RoleEventManager,
		Department:        "Computer Science",
		Bio:               "I organize tech events",
		Company:           "TechEvents Inc.",
		YearsOfExperience: 5,
	}
	if err := users.Create(ctx, manager); err != nil {
		return err
	}

	student := &entity.User{
		Username:     "student",
		PasswordHash: string(hash),
		Email:        "student@example.com",
		FirstName:    "Student",
		LastName:     "User",
		Role:         entity.RoleStudent,
		Department:   "Engineering",
		Bio:          "I love attending events",
	}
	if err := users.Create(ctx, student); err != nil {
		return err
	}

	logrus.Info("Sample accounts seeded: manager, student")
	return nil
}
