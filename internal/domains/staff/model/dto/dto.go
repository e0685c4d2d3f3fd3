package dto

import (
	"frontdesk/internal/domains/staff/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Role     string `json:"role"      validate:"required,oneof=manager receptionist kitchen bar"`
}

func (r *CreateStaffRequest) ToModel(username string, hashedPassword string) model.Staff {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleReceptionist
	}

	return model.Staff{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		FullName: r.FullName,
		Role:     role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateStaffRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=manager receptionist kitchen bar"`
	Active   *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type UpdateProfileRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"required,max=100"`
}

type StaffResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.Active = model.Active
	r.LastLogin = model.LastLogin
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffsResponse struct {
	Staffs    []StaffResponse `json:"staffs"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffsResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staffs = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staffs[i].FromModel(mod)
	}
}
