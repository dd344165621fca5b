package shop

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/lazharichir/tribulation/items"
)

const (
	// ArtifactOfferCount and ConsumableOfferCount size the offer grid.
	ArtifactOfferCount   = 2
	ConsumableOfferCount = 2

	// RerollBaseCost is the reroll price at the start of each shop visit;
	// RerollCostStep is added after every paid reroll within the visit.
	RerollBaseCost = 5
	RerollCostStep = 1
)

// ArtifactOffer is a purchasable artifact instance. The offer id is
// distinct from the artifact's base kind so purchase and removal only
// affect this offer, never the catalog.
type ArtifactOffer struct {
	OfferID  string         `json:"offerId"`
	Artifact items.Artifact `json:"artifact"`
}

// ConsumableOffer is a purchasable consumable instance.
type ConsumableOffer struct {
	OfferID    string           `json:"offerId"`
	Consumable items.Consumable `json:"consumable"`
}

// Offers is the transient, regenerable offer set for one shop visit.
type Offers struct {
	Artifacts   []ArtifactOffer   `json:"artifacts"`
	Consumables []ConsumableOffer `json:"consumables"`
}

// Generate draws a fresh offer set without replacement from the catalogs.
func Generate(r *rand.Rand) Offers {
	artifacts := items.ArtifactCatalog()
	r.Shuffle(len(artifacts), func(i, j int) {
		artifacts[i], artifacts[j] = artifacts[j], artifacts[i]
	})

	consumables := items.ConsumableCatalog()
	r.Shuffle(len(consumables), func(i, j int) {
		consumables[i], consumables[j] = consumables[j], consumables[i]
	})

	offers := Offers{}
	for _, artifact := range artifacts[:ArtifactOfferCount] {
		offers.Artifacts = append(offers.Artifacts, ArtifactOffer{
			OfferID:  uuid.NewString(),
			Artifact: artifact,
		})
	}
	for _, consumable := range consumables[:ConsumableOfferCount] {
		offers.Consumables = append(offers.Consumables, ConsumableOffer{
			OfferID:    uuid.NewString(),
			Consumable: consumable,
		})
	}

	return offers
}

// FindArtifact returns the artifact offer with the given offer id.
func (o Offers) FindArtifact(offerID string) (ArtifactOffer, bool) {
	for _, offer := range o.Artifacts {
		if offer.OfferID == offerID {
			return offer, true
		}
	}
	return ArtifactOffer{}, false
}

// FindConsumable returns the consumable offer with the given offer id.
func (o Offers) FindConsumable(offerID string) (ConsumableOffer, bool) {
	for _, offer := range o.Consumables {
		if offer.OfferID == offerID {
			return offer, true
		}
	}
	return ConsumableOffer{}, false
}

// RemoveArtifact drops a purchased artifact offer from the set.
func (o *Offers) RemoveArtifact(offerID string) {
	out := o.Artifacts[:0]
	for _, offer := range o.Artifacts {
		if offer.OfferID != offerID {
			out = append(out, offer)
		}
	}
	o.Artifacts = out
}

// RemoveConsumable drops a purchased consumable offer from the set.
func (o *Offers) RemoveConsumable(offerID string) {
	out := o.Consumables[:0]
	for _, offer := range o.Consumables {
		if offer.OfferID != offerID {
			out = append(out, offer)
		}
	}
	o.Consumables = out
}
