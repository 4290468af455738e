package domain

// ActivityKind distinguishes plain applications from browser tabs.
type ActivityKind string

const (
	ActivitySimple  ActivityKind = "simple"
	ActivityBrowser ActivityKind = "browser"
)

// ActivityIdentity is the platform-observed identity of the foreground
// activity. It is a comparable value: two observations refer to the same
// real-world activity exactly when their identities are equal.
type ActivityIdentity struct {
	Kind ActivityKind

	// Name is the application name for simple activities and the browser
	// window name for browser activities.
	Name string

	// TabTitle and TabURL are set only for browser activities.
	TabTitle string
	TabURL   string
}

// SimpleActivity builds the identity of a plain foreground application.
func SimpleActivity(name string) ActivityIdentity {
	return ActivityIdentity{Kind: ActivitySimple, Name: name}
}

// BrowserActivity builds the identity of an active browser tab.
func BrowserActivity(windowName, tabTitle, tabURL string) ActivityIdentity {
	return ActivityIdentity{
		Kind:     ActivityBrowser,
		Name:     windowName,
		TabTitle: tabTitle,
		TabURL:   tabURL,
	}
}

// NormalizedActivity holds the three derived views of an identity: the stable
// classification cache key, the human-readable session log label, and the
// subject text handed to the classifier.
type NormalizedActivity struct {
	CacheKey string
	LogLabel string
	Subject  string
}

// Normalize derives the cache key, log label and classification subject for
// an identity. It is pure and never fails; missing fields render as empty
// strings. Cache key stability matters more than uniqueness: the same
// real-world activity must always produce the same key.
func (a ActivityIdentity) Normalize() NormalizedActivity {
	if a.Kind == ActivityBrowser {
		return NormalizedActivity{
			CacheKey: "chrome|" + a.TabTitle + "|" + a.TabURL,
			LogLabel: a.Name + " | " + a.TabTitle,
			Subject:  a.TabTitle + " | " + a.TabURL,
		}
	}
	return NormalizedActivity{
		CacheKey: a.Name,
		LogLabel: a.Name,
		Subject:  a.Name,
	}
}
