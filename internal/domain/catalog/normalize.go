// Package catalog reconciles store data from relational rows and opaque
// payloads, and derives display values such as neighborhoods.
package catalog

import (
	"math"
	"strings"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/storedoc"
)

// fullDataFields are the values extracted from a store's full-data payload.
// A nil field means the payload does not carry it.
type fullDataFields struct {
	name         string
	address      string
	lat, lng     *float64
	category     string
	categorySlug *string
	city         string
	phone        *string
	rating       *float64
	ratingCount  *int64
	description  *string
	priceRange   *string
}

// Normalize builds the canonical view of a joined store row. For every field
// the full-data payload wins, then the aliased projection, then the raw
// column, then the default.
func Normalize(row entity.StoreRow) entity.StoreView {
	raw := row.Raw
	if raw == nil {
		raw = &entity.Store{}
	}
	fd := extractFullData(storedoc.Parse(raw.FullData))
	proj := row.Projected

	view := entity.StoreView{
		ID:          raw.ID,
		Token:       row.Token,
		Province:    raw.ProvinceName,
		Website:     raw.Website,
		Email:       raw.Email,
		HasWorkshop: raw.HasWorkshop,
		FullData:    raw.FullData,
	}
	if view.Token == "" {
		view.Token = raw.Token
	}

	view.Name = firstString(fd.name, placeholderFree(proj.Name), deref(raw.Name))
	if view.Name == "" {
		view.Name = constants.UnknownLabel
	}
	view.Address = firstString(fd.address, deref(proj.Address), deref(raw.Address))
	view.Lat = firstFloat(fd.lat, finite(proj.Lat), finite(raw.Lat))
	view.Lng = firstFloat(fd.lng, finite(proj.Lng), finite(raw.Lng))
	view.Category = firstString(fd.category, placeholderFree(proj.Category), deref(raw.CategoryDisplay))
	view.CategorySlug = firstPtr(fd.categorySlug, nonEmpty(raw.CategorySlug))
	view.City = firstString(fd.city, deref(proj.City), deref(raw.CityName))
	view.Phone = firstPtr(fd.phone, nonEmpty(raw.Phone))
	view.Rating = firstFloat(fd.rating, finite(raw.Rating))
	view.RatingCount = fd.ratingCount
	if view.RatingCount == nil {
		view.RatingCount = raw.RatingCount
	}
	view.Description = firstPtr(fd.description, nonEmpty(raw.Description))
	view.PriceRange = firstPtr(fd.priceRange, nonEmpty(raw.PriceRange))

	return view
}

// NormalizeStore is Normalize for a store read directly from the store table.
func NormalizeStore(store *entity.Store) entity.StoreView {
	return Normalize(entity.StoreRow{Token: store.Token, Raw: store})
}

func extractFullData(doc storedoc.Document) fullDataFields {
	var fd fullDataFields
	if doc.IsEmpty() {
		return fd
	}

	if name, ok := doc.NonEmptyString("name"); ok {
		fd.name = name
	} else if name, ok := doc.NonEmptyString("seo_details", "name"); ok {
		fd.name = name
	}

	fd.address = firstTextField(doc)
	fd.lat, fd.lng = pointCoordinates(doc)

	fd.category, _ = doc.NonEmptyString("category")
	fd.phone = optionalString(doc, "phone_link")
	fd.description = optionalString(doc, "description")
	fd.priceRange = optionalString(doc, "price_range")

	if rating, ok := doc.Number("rating"); ok && !math.IsNaN(rating) {
		fd.rating = &rating
	}

	if reviews, ok := doc.Document("reviews"); ok && !reviews.IsEmpty() {
		if !reviews.Has("total") {
			var zero int64
			fd.ratingCount = &zero
		} else if total, ok := reviews.Number("total"); ok && !math.IsNaN(total) && math.Abs(total) < math.MaxInt64 {
			count := int64(total)
			fd.ratingCount = &count
		}
	}

	if urlTitle, ok := doc.String("seo_details", "url_title"); ok {
		if idx := strings.LastIndex(urlTitle, "_"); idx >= 0 {
			slug := urlTitle[idx+1:]
			fd.categorySlug = &slug
		}
	}

	fd.city, _ = doc.NonEmptyString("seo_details", "schemas", "0", "geo", "addressLocality")

	return fd
}

// firstTextField returns the first non-empty value of a "text" entry in fields.
func firstTextField(doc storedoc.Document) string {
	fields, _ := doc.List("fields")
	for i := range fields {
		field, ok := storedoc.Index(fields, i)
		if !ok {
			continue
		}
		if kind, _ := field.String("type"); kind != "text" {
			continue
		}
		if value, ok := field.NonEmptyString("value"); ok {
			return value
		}
	}

	return ""
}

// pointCoordinates reads geometry.coordinates, which is ordered [lng, lat].
func pointCoordinates(doc storedoc.Document) (lat, lng *float64) {
	geometry, ok := doc.Document("geometry")
	if !ok {
		return nil, nil
	}
	if kind, _ := geometry.String("type"); kind != "Point" {
		return nil, nil
	}
	coords, ok := geometry.List("coordinates")
	if !ok || len(coords) < 2 {
		return nil, nil
	}

	if v, ok := storedoc.ToNumber(coords[0]); ok && isFinite(v) {
		lng = &v
	}
	if v, ok := storedoc.ToNumber(coords[1]); ok && isFinite(v) {
		lat = &v
	}

	return lat, lng
}

func optionalString(doc storedoc.Document, key string) *string {
	s, ok := doc.NonEmptyString(key)
	if !ok {
		return nil
	}

	return &s
}

// placeholderFree drops the unknown label a projection may substitute for NULL.
func placeholderFree(s *string) string {
	if s == nil || *s == constants.UnknownLabel {
		return ""
	}

	return *s
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstFloat(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}

func firstPtr(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}

func finite(v *float64) *float64 {
	if v == nil || !isFinite(*v) {
		return nil
	}

	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
