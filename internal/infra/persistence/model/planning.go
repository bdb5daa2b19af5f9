package model

import (
	"time"

	"vivaha/internal/domain/entity"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// GuestDocument is the stored form of a guest list entry.
type GuestDocument struct {
	ID           *surrealmodels.RecordID `json:"id,omitempty"`
	Namespace    string                  `json:"namespace"`
	Name         string                  `json:"name"`
	Email        string                  `json:"email,omitempty"`
	Phone        string                  `json:"phone,omitempty"`
	Side         string                  `json:"side,omitempty"`
	RSVP         string                  `json:"rsvp"`
	PlusOnes     int                     `json:"plus_ones"`
	DietaryNotes string                  `json:"dietary_notes,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// GuestFromEntity converts a domain guest to its stored form.
func GuestFromEntity(g *entity.Guest) *GuestDocument {
	return &GuestDocument{
		ID:           NewRecordID(TableGuests, g.ID),
		Namespace:    g.Namespace.String(),
		Name:         g.Name,
		Email:        g.Email,
		Phone:        g.Phone,
		Side:         g.Side,
		RSVP:         string(g.RSVP),
		PlusOnes:     g.PlusOnes,
		DietaryNotes: g.DietaryNotes,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// ToEntity converts the stored form back to the domain guest.
func (d *GuestDocument) ToEntity() *entity.Guest {
	return &entity.Guest{
		ID:           UUIDFromRecordID(d.ID),
		Namespace:    entity.NamespaceKey(d.Namespace),
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		Side:         d.Side,
		RSVP:         entity.RSVPStatus(d.RSVP),
		PlusOnes:     d.PlusOnes,
		DietaryNotes: d.DietaryNotes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// BudgetCategoryDocument is the stored form of a budget category.
type BudgetCategoryDocument struct {
	ID        *surrealmodels.RecordID `json:"id,omitempty"`
	Namespace string                  `json:"namespace"`
	Name      string                  `json:"name"`
	Allocated float64                 `json:"allocated"`
	Spent     float64                 `json:"spent"`
	Notes     string                  `json:"notes,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// BudgetCategoryFromEntity converts a domain budget category to its stored form.
func BudgetCategoryFromEntity(c *entity.BudgetCategory) *BudgetCategoryDocument {
	return &BudgetCategoryDocument{
		ID:        NewRecordID(TableBudgetCategories, c.ID),
		Namespace: c.Namespace.String(),
		Name:      c.Name,
		Allocated: c.Allocated,
		Spent:     c.Spent,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToEntity converts the stored form back to the domain budget category.
func (d *BudgetCategoryDocument) ToEntity() *entity.BudgetCategory {
	return &entity.BudgetCategory{
		ID:        UUIDFromRecordID(d.ID),
		Namespace: entity.NamespaceKey(d.Namespace),
		Name:      d.Name,
		Allocated: d.Allocated,
		Spent:     d.Spent,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// TodoDocument is the stored form of a planning task.
type TodoDocument struct {
	ID        *surrealmodels.RecordID `json:"id,omitempty"`
	Namespace string                  `json:"namespace"`
	Title     string                  `json:"title"`
	Completed bool                    `json:"completed"`
	Category  string                  `json:"category,omitempty"`
	DueDate   *time.Time              `json:"due_date,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// TodoFromEntity converts a domain task to its stored form.
func TodoFromEntity(t *entity.Todo) *TodoDocument {
	return &TodoDocument{
		ID:        NewRecordID(TableTodos, t.ID),
		Namespace: t.Namespace.String(),
		Title:     t.Title,
		Completed: t.Completed,
		Category:  t.Category,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToEntity converts the stored form back to the domain task.
func (d *TodoDocument) ToEntity() *entity.Todo {
	return &entity.Todo{
		ID:        UUIDFromRecordID(d.ID),
		Namespace: entity.NamespaceKey(d.Namespace),
		Title:     d.Title,
		Completed: d.Completed,
		Category:  d.Category,
		DueDate:   d.DueDate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// RegistryDocument is the stored form of a gift registry link.
type RegistryDocument struct {
	ID        *surrealmodels.RecordID `json:"id,omitempty"`
	Namespace string                  `json:"namespace"`
	Name      string                  `json:"name"`
	Type      string                  `json:"type"`
	URL       string                  `json:"url"`
	Notes     string                  `json:"notes,omitempty"`
	AddedAt   time.Time               `json:"added_at"`
}

// RegistryFromEntity converts a domain registry link to its stored form.
func RegistryFromEntity(r *entity.Registry) *RegistryDocument {
	return &RegistryDocument{
		ID:        NewRecordID(TableRegistries, r.ID),
		Namespace: r.Namespace.String(),
		Name:      r.Name,
		Type:      string(r.Type),
		URL:       r.URL,
		Notes:     r.Notes,
		AddedAt:   r.AddedAt,
	}
}

// ToEntity converts the stored form back to the domain registry link.
func (d *RegistryDocument) ToEntity() *entity.Registry {
	return &entity.Registry{
		ID:        UUIDFromRecordID(d.ID),
		Namespace: entity.NamespaceKey(d.Namespace),
		Name:      d.Name,
		Type:      entity.RegistryType(d.Type),
		URL:       d.URL,
		Notes:     d.Notes,
		AddedAt:   d.AddedAt,
	}
}

// VendorDocument is the stored form of a tracked vendor.
type VendorDocument struct {
	ID        *surrealmodels.RecordID `json:"id,omitempty"`
	Namespace string                  `json:"namespace"`
	Name      string                  `json:"name"`
	Category  string                  `json:"category,omitempty"`
	Status    string                  `json:"status"`
	Price     float64                 `json:"price,omitempty"`
	Location  string                  `json:"location,omitempty"`
	Notes     string                  `json:"notes,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// VendorFromEntity converts a domain vendor to its stored form.
func VendorFromEntity(v *entity.Vendor) *VendorDocument {
	return &VendorDocument{
		ID:        NewRecordID(TableVendors, v.ID),
		Namespace: v.Namespace.String(),
		Name:      v.Name,
		Category:  v.Category,
		Status:    string(v.Status),
		Price:     v.Price,
		Location:  v.Location,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// ToEntity converts the stored form back to the domain vendor.
func (d *VendorDocument) ToEntity() *entity.Vendor {
	return &entity.Vendor{
		ID:        UUIDFromRecordID(d.ID),
		Namespace: entity.NamespaceKey(d.Namespace),
		Name:      d.Name,
		Category:  d.Category,
		Status:    entity.VendorStatus(d.Status),
		Price:     d.Price,
		Location:  d.Location,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// SeatingTableDocument is one table embedded in a seating chart.
type SeatingTableDocument struct {
	TableID  string                 `json:"table_id"`
	Name     string                 `json:"name"`
	Capacity int                    `json:"capacity"`
	Shape    string                 `json:"shape"`
	X        float64                `json:"x"`
	Y        float64                `json:"y"`
	Guests   []SeatedGuestDocument  `json:"guests,omitempty"`
}

// SeatedGuestDocument is one placed guest embedded in a seating table.
type SeatedGuestDocument struct {
	GuestID string `json:"guest_id"`
	Name    string `json:"name"`
}

// SeatingChartDocument is the stored form of a namespace's seating chart.
type SeatingChartDocument struct {
	ID        *surrealmodels.RecordID `json:"id,omitempty"`
	Namespace string                  `json:"namespace"`
	Tables    []SeatingTableDocument  `json:"tables,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// SeatingChartFromEntity converts a domain seating chart to its stored form.
func SeatingChartFromEntity(c *entity.SeatingChart) *SeatingChartDocument {
	tables := make([]SeatingTableDocument, 0, len(c.Tables))
	for _, t := range c.Tables {
		guests := make([]SeatedGuestDocument, 0, len(t.Guests))
		for _, g := range t.Guests {
			guests = append(guests, SeatedGuestDocument{GuestID: g.ID, Name: g.Name})
		}
		tables = append(tables, SeatingTableDocument{
			TableID:  t.ID,
			Name:     t.Name,
			Capacity: t.Capacity,
			Shape:    string(t.Shape),
			X:        t.X,
			Y:        t.Y,
			Guests:   guests,
		})
	}

	return &SeatingChartDocument{
		ID:        NewRecordID(TableSeatingCharts, c.ID),
		Namespace: c.Namespace.String(),
		Tables:    tables,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToEntity converts the stored form back to the domain seating chart.
func (d *SeatingChartDocument) ToEntity() *entity.SeatingChart {
	tables := make([]entity.SeatingTable, 0, len(d.Tables))
	for _, t := range d.Tables {
		guests := make([]entity.SeatedGuest, 0, len(t.Guests))
		for _, g := range t.Guests {
			guests = append(guests, entity.SeatedGuest{ID: g.GuestID, Name: g.Name})
		}
		tables = append(tables, entity.SeatingTable{
			ID:       t.TableID,
			Name:     t.Name,
			Capacity: t.Capacity,
			Shape:    entity.TableShape(t.Shape),
			X:        t.X,
			Y:        t.Y,
			Guests:   guests,
		})
	}

	return &entity.SeatingChart{
		ID:        UUIDFromRecordID(d.ID),
		Namespace: entity.NamespaceKey(d.Namespace),
		Tables:    tables,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
