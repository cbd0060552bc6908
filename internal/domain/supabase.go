package domain

import "github.com/supabase-community/supabase-go"

// SupabaseClient owns the Supabase connection shared by the record and object stores.
type SupabaseClient interface {
	Initialize() error
	DB() *supabase.Client
}
