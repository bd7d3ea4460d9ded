package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carriedev/hazellab-backend/pkg/db/models"
	"github.com/carriedev/hazellab-backend/pkg/enums"
)

func seedUser(t *testing.T, repo *Repository, username, email string, role enums.UserRole, status enums.UserStatus) *models.User {
	t.Helper()

	user, err := repo.Create(context.Background(), &models.User{
		Username:     username,
		Email:        email,
		Rut:          "11.111.111-1",
		PasswordHash: "hash",
		Role:         role,
		Status:       status,
	})
	require.NoError(t, err)
	return user
}

func TestRepositorySearchByUsername(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	seedUser(t, repo, "Hazel Morales", "hazel@duoc.cl", enums.UserRoleAdmin, enums.UserStatusActivo)
	seedUser(t, repo, "Pedro Soto", "pedro@duoc.cl", enums.UserRoleCliente, enums.UserStatusActivo)

	matches, err := repo.SearchByUsername(context.Background(), "HAZEL")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Hazel Morales", matches[0].Username)

	none, err := repo.SearchByUsername(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepositorySearchByRoleAndStatus(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	seedUser(t, repo, "Admin", "admin@duoc.cl", enums.UserRoleAdmin, enums.UserStatusActivo)
	seedUser(t, repo, "Cliente A", "a@duoc.cl", enums.UserRoleCliente, enums.UserStatusActivo)
	seedUser(t, repo, "Cliente B", "b@duoc.cl", enums.UserRoleCliente, enums.UserStatusInactivo)

	admins, err := repo.SearchByRole(context.Background(), enums.UserRoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@duoc.cl", admins[0].Email)

	inactive, err := repo.SearchByStatus(context.Background(), enums.UserStatusInactivo)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Cliente B", inactive[0].Username)
}

func TestRepositoryFindByEmailMissing(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "fantasma@duoc.cl")
	require.Error(t, err)
}
