package chat

import "strings"

const (
	promptReply   = "Please type a message."
	fallbackReply = "Sorry, please ask about services, prices, timing, booking or location."

	servicesReply = `💇 Our Services include:
• Haircut
• Beard Trim
• Hair Spa
• Facial
• Hair Color`
	pricesReply = `💇 Our Services & Prices:
• Haircut – ₹200
• Beard Trim – ₹100
• Hair Spa – ₹800
• Facial – ₹1200
• Hair Color – ₹1500
For detailed pricing, visit: https://h2osalon.vercel.app/`
	timingReply   = "⏰ We are open daily from 9:00 AM to 9:00 PM."
	bookingReply  = "📅 You can book an appointment from our website using the Book Appointment button."
	locationReply = "📍 H₂O The Men's Salon\nDevalay Complex, Beltar Mirzapur, UP, India."
	paymentReply  = "💳 We accept online payments via Razorpay (UPI, Card, NetBanking)."
	barberReply   = "✂️ Our professional barbers are available all days. You can select your barber while booking."
)

// rule order is a behavioral contract: a message matching several groups
// resolves to the first group in this list.
var rules = []struct {
	keywords []string
	reply    string
}{
	{[]string{"service"}, servicesReply},
	{[]string{"price", "rate"}, pricesReply},
	{[]string{"time", "open"}, timingReply},
	{[]string{"book", "appointment"}, bookingReply},
	{[]string{"location", "address"}, locationReply},
	{[]string{"payment", "pay"}, paymentReply},
	{[]string{"barber", "staff"}, barberReply},
}

// Respond maps free-text input to a canned reply by substring containment.
func Respond(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return promptReply
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}
	return fallbackReply
}
