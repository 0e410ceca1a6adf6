package concierge

import (
	"fmt"
	"strings"

	"elysium/models"
)

// PlaceholderEmail is recorded when the client never gives one in chat.
const PlaceholderEmail = "guest@elysium.com"

// historyLimit bounds how many prior turns are forwarded to the model.
const historyLimit = 10

// buildSystemInstruction grounds the model strictly in the current catalog
// and contact snapshot. The concierge answers in Bangla and calls the
// book_appointment tool once it holds a name, service, date and time.
func buildSystemInstruction(services []models.Service, content models.CMSContent) string {
	var catalog strings.Builder
	for _, s := range services {
		fmt.Fprintf(&catalog, "%s: %s (%s) - %s\n", s.Title, s.Price, s.Duration, s.Description)
	}

	return fmt.Sprintf(`আপনার নাম "Customer Care" (কাস্টমার কেয়ার)। আপনি Elysium বিউটি পার্লারের কাস্টমার সাপোর্ট এজেন্ট।

আপনার লক্ষ্য হলো গ্রাহকদের প্রশ্নের উত্তর দেওয়া এবং অ্যাপয়েন্টমেন্ট বুক করতে সাহায্য করা।

নিচে আমাদের পার্লারের বর্তমান সার্ভিস এবং তথ্যাবলী দেওয়া হলো। **শুধুমাত্র** এই তথ্যের ওপর ভিত্তি করে উত্তর দেবেন:

সার্ভিস সমূহ (Services & Prices):
%s
যোগাযোগ ও ঠিকানা (Contact Info):
ঠিকানা: %s, %s
ফোন: %s
সময়সূচী: %s
ট্যাগলাইন: %s

নির্দেশনা:
১. সব সময় **বাংলা ভাষায়** উত্তর দেবেন।
২. আপনার টোন হবে মার্জিত, ভদ্র এবং পেশাদার।
৩. যদি কেউ অ্যাপয়েন্টমেন্ট বুক করতে চায়, তাদের নাম, সার্ভিস, তারিখ এবং সময় জিজ্ঞাসা করুন। সব তথ্য পেলে 'book_appointment' টুলটি ব্যবহার করুন।
৪. ইমেইল না দিলে '%s' ব্যবহার করুন।
৫. উত্তর ছোট এবং প্রাসঙ্গিক রাখবেন।`,
		catalog.String(),
		content.Contact.AddressLine1,
		content.Contact.AddressLine2,
		content.Contact.Phone,
		content.Contact.Hours,
		content.Hero.Tagline,
		PlaceholderEmail,
	)
}

// buildInsightsPrompt asks for the staff morning briefing over today's
// appointment data.
func buildInsightsPrompt(appointmentsJSON string) string {
	return fmt.Sprintf(`Act as a high-end Spa Manager AI. Analyze the following appointment data for today:
%s

Provide a brief 3-sentence "Executive Morning Briefing" for the staff.
Focus on VIPs coming in, potential resource bottlenecks, and a motivational quote.
Format: Plain text.`, appointmentsJSON)
}
