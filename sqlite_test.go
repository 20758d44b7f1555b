package estimate

import (
	"path/filepath"
	"testing"
)

func TestSQLiteBlobRoundTrip(t *testing.T) {
	blob, err := OpenSQLiteBlob(filepath.Join(t.TempDir(), "vendors.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer blob.Close()

	if data, err := blob.Load("missing"); err != nil || data != nil {
		t.Errorf("missing key: data=%v err=%v", data, err)
	}

	if err := blob.Store("k", []byte("v1")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if data, err := blob.Load("k"); err != nil || string(data) != "v1" {
		t.Errorf("load: data=%q err=%v", data, err)
	}

	// Overwrite under the same key.
	if err := blob.Store("k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if data, _ := blob.Load("k"); string(data) != "v2" {
		t.Errorf("after overwrite: %q", data)
	}
}

func TestVendorStoreOnSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.db")
	blob, err := OpenSQLiteBlob(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	created, err := NewVendorStore(blob).Create(testFields("Fabric Hut"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	blob.Close()

	// Reopen the database and check the collection survived.
	blob, err = OpenSQLiteBlob(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer blob.Close()

	vendors := NewVendorStore(blob).Vendors()
	if len(vendors) != 1 {
		t.Fatalf("listed %d vendors, want 1", len(vendors))
	}
	if vendors[0].ID != created.ID || vendors[0].Name != "Fabric Hut" {
		t.Errorf("reloaded vendor = %+v", vendors[0])
	}
	if vendors[0].PriceUnit != PerRoll || vendors[0].RollLengthUnit != UnitYards {
		t.Errorf("unit tags did not survive: %+v", vendors[0])
	}
}
