package dbmodels

type RequestStatus struct {
	BaseIntModel
	Name        string `gorm:"type:varchar(100)"`
	Description string
	IsFinal     bool
	OrderNum    int
}
