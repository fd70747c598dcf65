// Package policy holds every ownership and role check as a pure function of
// the requesting identity and the resource's ownership fields, so the rules
// can be tested without storage or HTTP.
package policy

import (
	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
)

// Identity is the authenticated requester, resolved once per request.
type Identity struct {
	UserID uint
	Role   models.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// CanMutateJob allows update/delete for the posting recruiter or an admin.
// An externally sourced job has no owner, so only an admin may touch it.
func CanMutateJob(actor Identity, job *models.Job) error {
	if actor.IsAdmin() {
		return nil
	}
	if job.PostedByID != nil && *job.PostedByID == actor.UserID {
		return nil
	}
	return errs.Forbiddenf("not authorized to modify this job")
}

// CanReviewApplications allows reading a job's applicant list and updating
// application statuses; the rule is the same for both.
func CanReviewApplications(actor Identity, job *models.Job) error {
	if actor.IsAdmin() {
		return nil
	}
	if job.PostedByID != nil && *job.PostedByID == actor.UserID {
		return nil
	}
	return errs.Forbiddenf("not authorized to view applications for this job")
}

// CanWithdrawApplication allows deletion only by the applicant who created it.
func CanWithdrawApplication(actor Identity, application *models.Application) error {
	if application.ApplicantID == actor.UserID {
		return nil
	}
	return errs.Forbiddenf("not authorized to withdraw this application")
}

// CanRemoveSavedJob allows deletion only by the user who saved the job.
func CanRemoveSavedJob(actor Identity, saved *models.SavedJob) error {
	if saved.UserID == actor.UserID {
		return nil
	}
	return errs.Forbiddenf("not authorized to remove this saved job")
}

// CanAdministerUsers gates the user listing/fetch/delete surface.
func CanAdministerUsers(actor Identity) error {
	if actor.IsAdmin() {
		return nil
	}
	return errs.Forbiddenf("admin access required")
}

// CanDeleteUser refuses deletion of admin accounts regardless of requester.
func CanDeleteUser(actor Identity, target *models.User) error {
	if err := CanAdministerUsers(actor); err != nil {
		return err
	}
	if target.Role == models.RoleAdmin {
		return errs.InvalidOperationf("cannot delete admin user")
	}
	return nil
}
