package domain

// Furnishing represents the furnishing level of a property
type Furnishing string

const (
	FurnishingUnfurnished Furnishing = "unfurnished"
	FurnishingSemi        Furnishing = "semi_furnished"
	FurnishingFurnished   Furnishing = "furnished"
)

// IsValid returns true if the furnishing level is one of the known values
func (f Furnishing) IsValid() bool {
	return f == FurnishingUnfurnished || f == FurnishingSemi || f == FurnishingFurnished
}

// Property объект недвижимости, по которому проводятся осмотры
type Property struct {
	ID         int64
	Code       string // Внешний код объекта (из системы агентства)
	ClientID   int64
	AgencyID   int64
	Address    string
	AreaM2     float64
	Furnishing Furnishing
	BaseCharge float64 // Базовая стоимость осмотра для клиента
}

// Agency агентство с тарифами за квадратный метр по уровню меблировки
type Agency struct {
	ID                   int64
	Name                 string
	RatePerM2Unfurnished float64
	RatePerM2Semi        float64
	RatePerM2Furnished   float64
}

// RateFor возвращает тариф за квадратный метр для уровня меблировки
func (a *Agency) RateFor(f Furnishing) float64 {
	switch f {
	case FurnishingUnfurnished:
		return a.RatePerM2Unfurnished
	case FurnishingSemi:
		return a.RatePerM2Semi
	case FurnishingFurnished:
		return a.RatePerM2Furnished
	default:
		return 0
	}
}

// Client клиент, заказывающий осмотры. DebtBalance накапливает задолженность
// за несостоявшиеся осмотры.
type Client struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	DebtBalance float64
}
