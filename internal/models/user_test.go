package models_test

import (
	"github.com/ledgerlite/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestUserEmailLowercased() {
	user := models.User{Name: "Jane", Email: " Jane@Example.COM ", PasswordHash: "hash"}
	suite.Require().Nil(suite.db.Create(&user).Error)

	suite.Assert().Equal("jane@example.com", user.Email)
	suite.Assert().Equal(models.RoleUser, user.Role)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	user := models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "hash"}
	suite.Require().Nil(suite.db.Create(&user).Error)

	// Uniqueness is case-insensitive since emails are lowercased on save
	duplicate := models.User{Name: "Janet", Email: "JANE@example.com", PasswordHash: "hash"}
	err := suite.db.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *TestSuiteStandard) TestUserInvalidRole() {
	user := models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "hash", Role: "root"}

	err := suite.db.Create(&user).Error
	suite.Assert().ErrorIs(err, models.ErrUserRoleInvalid)
}
