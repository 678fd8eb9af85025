package entity

// CustomerTier classifies a customer for shipping purposes.
// Gold customers never pay shipping, silver customers pay half.
type CustomerTier string

const (
	TierStandard CustomerTier = "STANDARD"
	TierSilver   CustomerTier = "SILVER"
	TierGold     CustomerTier = "GOLD"
)

type Customer struct {
	ID      string
	Name    string
	Address string
	Tier    CustomerTier
}
