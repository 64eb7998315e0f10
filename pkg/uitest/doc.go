// Package uitest provides widget testing without a real frame loop.
//
// A Tester mounts widget trees against a fake animation clock, pumps build
// frames on demand, and simulates user interaction:
//
//	func TestCounter(t *testing.T) {
//	    tester := uitest.NewTesterWithT(t)
//	    tester.MustPumpWidget(t, Counter{})
//
//	    tester.MustTap(t, uitest.ByText("Increment"))
//	    if !tester.Find(uitest.ByText("Count: 1")).Exists() {
//	        t.Fatal("expected count to advance")
//	    }
//	}
//
// Finders locate elements by widget type, key, text content, or an arbitrary
// predicate, and compose through Descendant.
package uitest
