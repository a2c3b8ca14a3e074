package gamemanager_test

import (
	"testing"

	"game-manager/internal/gamemanager"
)

func TestKindValid(t *testing.T) {
	for _, k := range gamemanager.Kinds {
		if !k.Valid() {
			t.Errorf("expected %q to be valid", k)
		}
	}
	for _, k := range []gamemanager.Kind{"", "VoIP", "ar"} {
		if k.Valid() {
			t.Errorf("expected %q to be invalid", k)
		}
	}
}
