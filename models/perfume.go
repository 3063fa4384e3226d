package models

type Perfume struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand       string `gorm:"not null;index" json:"brand"`
	Name        string `gorm:"not null" json:"name_perfume"`
	Family      string `json:"family"`
	Subfamily   string `json:"subfamily"`
	Gender      string `gorm:"index" json:"gender"`
	Description string `gorm:"type:text" json:"description"`
	ImageName   string `json:"image_name"`

	// Ordered as imported, duplicates permitted.
	Ingredients []PerfumeIngredient `gorm:"foreignKey:PerfumeID;constraint:OnDelete:CASCADE" json:"-"`

	Reviews []Review `gorm:"foreignKey:PerfumeID" json:"-"`
}

// PerfumeIngredient is one row of a perfume's ingredient list. The catalog
// import format carries ingredients as a plain ordered list of strings;
// Position preserves that order across reloads.
type PerfumeIngredient struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	PerfumeID uint   `gorm:"not null;index" json:"-"`
	Position  int    `gorm:"not null" json:"-"`
	Name      string `gorm:"not null" json:"name"`
}

// IngredientNames flattens the ingredient rows back to the imported list form.
func (p *Perfume) IngredientNames() []string {
	names := make([]string, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}
