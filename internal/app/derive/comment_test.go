package derive

import "testing"

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name    string
		ideaID  string
		text    string
		actorID string
		wantErr error
	}{
		{"ok", "i1", "nice thought", "u1", nil},
		{"whitespace only", "i1", "   \n\t ", "u1", ErrEmptyComment},
		{"empty text", "i1", "", "u1", ErrEmptyComment},
		{"no target", "", "text", "u1", ErrNoTarget},
		{"no actor", "i1", "text", "", ErrSignInRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComment(tt.ideaID, tt.text, tt.actorID)
			if err != tt.wantErr {
				t.Errorf("ValidateComment = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
