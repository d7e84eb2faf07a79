package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                       int64
	FullName                 string
	Email                    string
	Phone                    *string
	DOB                      *time.Time
	Gender                   *string
	BloodGroup               *string
	JoinDate                 *time.Time
	Department               string
	Designation              *string
	Experience               *string
	BasicSalary              decimal.Decimal
	WorkType                 *string
	Address                  *string
	City                     *string
	State                    *string
	Zip                      *string
	EmergencyContactName     *string
	EmergencyContactNumber   *string
	AnnualLeaveEntitlement   decimal.Decimal
	RequiredWorkHoursDaily   decimal.Decimal
	RequiredWorkHoursMonthly decimal.Decimal
}
