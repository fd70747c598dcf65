package policy

import (
	"testing"

	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func ptr(v uint) *uint { return &v }

func Test_CanMutateJob_OwnerAllowed(t *testing.T) {
	actor := Identity{UserID: 7, Role: models.RoleRecruiter}
	job := &models.Job{PostedByID: ptr(7)}

	assert.NoError(t, CanMutateJob(actor, job))
}

func Test_CanMutateJob_OtherRecruiterForbidden(t *testing.T) {
	actor := Identity{UserID: 8, Role: models.RoleRecruiter}
	job := &models.Job{PostedByID: ptr(7)}

	err := CanMutateJob(actor, job)
	assert.Error(t, err)
	assert.Equal(t, errs.Forbidden, errs.KindOf(err))
}

func Test_CanMutateJob_AdminAllowedRegardlessOfOwner(t *testing.T) {
	actor := Identity{UserID: 1, Role: models.RoleAdmin}

	assert.NoError(t, CanMutateJob(actor, &models.Job{PostedByID: ptr(7)}))
	assert.NoError(t, CanMutateJob(actor, &models.Job{}))
}

func Test_CanMutateJob_ExternalJobAdminOnly(t *testing.T) {
	recruiter := Identity{UserID: 7, Role: models.RoleRecruiter}
	external := &models.Job{PostedByID: nil}

	err := CanMutateJob(recruiter, external)
	assert.Equal(t, errs.Forbidden, errs.KindOf(err))
}

func Test_CanReviewApplications(t *testing.T) {
	owner := Identity{UserID: 5, Role: models.RoleRecruiter}
	stranger := Identity{UserID: 6, Role: models.RoleRecruiter}
	admin := Identity{UserID: 1, Role: models.RoleAdmin}
	job := &models.Job{PostedByID: ptr(5)}

	assert.NoError(t, CanReviewApplications(owner, job))
	assert.NoError(t, CanReviewApplications(admin, job))
	assert.Equal(t, errs.Forbidden, errs.KindOf(CanReviewApplications(stranger, job)))
}

func Test_CanWithdrawApplication_OnlyOwnApplicant(t *testing.T) {
	application := &models.Application{ApplicantID: 3}

	assert.NoError(t, CanWithdrawApplication(Identity{UserID: 3, Role: models.RoleJobseeker}, application))

	err := CanWithdrawApplication(Identity{UserID: 4, Role: models.RoleJobseeker}, application)
	assert.Equal(t, errs.Forbidden, errs.KindOf(err))

	// even an admin does not withdraw someone else's application
	err = CanWithdrawApplication(Identity{UserID: 1, Role: models.RoleAdmin}, application)
	assert.Equal(t, errs.Forbidden, errs.KindOf(err))
}

func Test_CanRemoveSavedJob_OnlyOwningUser(t *testing.T) {
	saved := &models.SavedJob{UserID: 3}

	assert.NoError(t, CanRemoveSavedJob(Identity{UserID: 3, Role: models.RoleJobseeker}, saved))
	assert.Equal(t, errs.Forbidden,
		errs.KindOf(CanRemoveSavedJob(Identity{UserID: 9, Role: models.RoleJobseeker}, saved)))
}

func Test_CanDeleteUser(t *testing.T) {
	admin := Identity{UserID: 1, Role: models.RoleAdmin}
	recruiter := Identity{UserID: 2, Role: models.RoleRecruiter}

	assert.NoError(t, CanDeleteUser(admin, &models.User{Role: models.RoleRecruiter}))
	assert.NoError(t, CanDeleteUser(admin, &models.User{Role: models.RoleJobseeker}))

	err := CanDeleteUser(admin, &models.User{Role: models.RoleAdmin})
	assert.Equal(t, errs.InvalidOperation, errs.KindOf(err))

	err = CanDeleteUser(recruiter, &models.User{Role: models.RoleJobseeker})
	assert.Equal(t, errs.Forbidden, errs.KindOf(err))
}
