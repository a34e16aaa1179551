package postcard

import (
	"fmt"
	"strings"

	"github.com/Gobd/desikit"
)

// Postcard is the letter Write renders. All three parts are required and
// must not be blank.
type Postcard struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
}

func (p *Postcard) Rules() []*desikit.FieldRules {
	return []*desikit.FieldRules{
		desikit.Field(&p.Sender, desikit.Required, desikit.NotBlank),
		desikit.Field(&p.Receiver, desikit.Required, desikit.NotBlank),
		desikit.Field(&p.Message, desikit.Required, desikit.NotBlank),
	}
}

// String renders the letter. Values are used as given, without trimming.
func (p Postcard) String() string {
	return fmt.Sprintf("Priy %s,\n\n%s\n\nAapka/Aapki,\n%s", p.Receiver, p.Message, p.Sender)
}

// Check reports why Write would refuse its arguments: a ValidationErrors
// keyed by "sender", "receiver" and "message" for values that are not
// strings or are blank. It returns nil when Write would succeed.
func Check(sender, receiver, message any) error {
	p, err := newPostcard(sender, receiver, message)
	if err != nil {
		return err
	}
	return desikit.Validate(&p)
}

func newPostcard(sender, receiver, message any) (Postcard, error) {
	errs := desikit.ValidationErrors{}
	str := func(key string, v any) string {
		s, ok := v.(string)
		if !ok {
			errs[key] = fmt.Errorf("expected string, got %T", v)
		}
		return s
	}
	p := Postcard{
		Sender:   str("sender", sender),
		Receiver: str("receiver", receiver),
		Message:  str("message", message),
	}
	if len(errs) > 0 {
		return Postcard{}, errs
	}
	return p, nil
}

// Write renders a postcard from sender to receiver:
//
//	Priy {receiver},
//
//	{message}
//
//	Aapka/Aapki,
//	{sender}
//
// Every argument must be a string that is not blank; otherwise Write
// returns "".
func Write(sender, receiver, message any) string {
	p, err := newPostcard(sender, receiver, message)
	if err != nil {
		return ""
	}
	if err := desikit.Validate(&p); err != nil {
		return ""
	}
	return p.String()
}

// IsFromState reports whether address ends with stateCode, e.g.
// "Guddu, Lucknow, UP" and "UP". The match is exact and case-sensitive.
// Both arguments must be strings.
func IsFromState(address, stateCode any) bool {
	a, ok := address.(string)
	if !ok {
		return false
	}
	code, ok := stateCode.(string)
	if !ok {
		return false
	}
	return strings.HasSuffix(a, code)
}

// CountVowels counts the ASCII vowels, upper and lower case, in message.
// It returns 0 when message is not a string.
func CountVowels(message any) int {
	s, ok := message.(string)
	if !ok {
		return 0
	}
	n := 0
	for i := range len(s) {
		if strings.IndexByte("aeiouAEIOU", s[i]) >= 0 {
			n++
		}
	}
	return n
}
