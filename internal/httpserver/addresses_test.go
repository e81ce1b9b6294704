package httpserver

import (
	"net/http"
	"testing"

	"kaikari-xpress/internal/domain"
)

const homeAddressBody = `{
	"type": "home",
	"fullAddress": "123 Main Street, Chennai",
	"city": "Chennai",
	"state": "Tamil Nadu",
	"pincode": "600001"
}`

const workAddressBody = `{
	"type": "work",
	"fullAddress": "456 Business Park, Chennai",
	"city": "Chennai",
	"state": "Tamil Nadu",
	"pincode": "600002"
}`

func TestAddAddressFirstIsDefault(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/addresses", homeAddressBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var added domain.Address
	decodeBody(t, rec, &added)
	if !added.IsDefault || added.ID == "" {
		t.Fatalf("first address should be default with an id, got %+v", added)
	}

	rec = doRequest(t, router, http.MethodGet, "/addresses/default", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAddAddressValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"short pincode", `{"type":"home","fullAddress":"x","city":"c","state":"s","pincode":"600"}`},
		{"non-numeric pincode", `{"type":"home","fullAddress":"x","city":"c","state":"s","pincode":"60000a"}`},
		{"bad type", `{"type":"cabin","fullAddress":"x","city":"c","state":"s","pincode":"600001"}`},
		{"missing city", `{"type":"home","fullAddress":"x","state":"s","pincode":"600001"}`},
	}
	for _, tc := range cases {
		rec := doRequest(t, router, http.MethodPost, "/addresses", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestSetDefaultAddressExclusive(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/addresses", homeAddressBody)
	var home domain.Address
	decodeBody(t, rec, &home)

	rec = doRequest(t, router, http.MethodPost, "/addresses", workAddressBody)
	var work domain.Address
	decodeBody(t, rec, &work)

	rec = doRequest(t, router, http.MethodPost, "/addresses/"+work.ID+"/default", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Addresses []domain.Address `json:"addresses"`
	}
	decodeBody(t, rec, &resp)
	defaults := 0
	for _, a := range resp.Addresses {
		if a.IsDefault {
			defaults++
			if a.ID != work.ID {
				t.Fatalf("wrong default address: %+v", a)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestDeleteDefaultPromotesRemaining(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/addresses", homeAddressBody)
	var home domain.Address
	decodeBody(t, rec, &home)
	doRequest(t, router, http.MethodPost, "/addresses", workAddressBody)

	rec = doRequest(t, router, http.MethodDelete, "/addresses/"+home.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/addresses/default", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected a promoted default, got %d", rec.Code)
	}
	var def domain.Address
	decodeBody(t, rec, &def)
	if def.Type != domain.AddressTypeWork {
		t.Fatalf("expected the work address promoted, got %+v", def)
	}
}

func TestProfileAutoCreatedOnFirstRead(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var profile domain.UserProfile
	decodeBody(t, rec, &profile)
	if profile.ID == "" || profile.Name == "" {
		t.Fatalf("expected a default profile, got %+v", profile)
	}
}

func TestUpdateProfileValidatesFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/profile", `{"name":"A","email":"not-an-email","phone":"1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPut, "/profile", `{"name":"Anu","email":"anu@email.com","phone":"+91 99999 88888"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/profile", "")
	var profile domain.UserProfile
	decodeBody(t, rec, &profile)
	if profile.Name != "Anu" {
		t.Fatalf("profile update not persisted: %+v", profile)
	}
}

func TestClearAppData(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/addresses", homeAddressBody)
	rec := doRequest(t, router, http.MethodDelete, "/appdata", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/addresses", "")
	var resp struct {
		Addresses []domain.Address `json:"addresses"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Addresses) != 0 {
		t.Fatalf("expected no addresses after clear, got %+v", resp.Addresses)
	}
}

func TestPastOrderStatusTransition(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/cart/items", `{"productId":1}`)
	rec := doRequest(t, router, http.MethodPost, "/checkout", `{"deliverySlot":"10-20 mins","paymentMethod":"UPI"}`)
	var placed checkoutResponse
	decodeBody(t, rec, &placed)

	rec = doRequest(t, router, http.MethodPatch, "/past-orders/"+placed.PastOrderID, `{"status":"delivered"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated domain.PastOrder
	decodeBody(t, rec, &updated)
	if updated.Status != domain.PastOrderDelivered || updated.DeliveredAt == nil {
		t.Fatalf("expected delivered with timestamp, got %+v", updated)
	}

	rec = doRequest(t, router, http.MethodPatch, "/past-orders/ord_missing", `{"status":"delivered"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", rec.Code)
	}
}
