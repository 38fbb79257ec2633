package donation

import "github.com/createrainforest/bosweb/pkg/form"

// Form and field names used by the donation pages.
const (
	ProfileForm      = "form"
	OrderForm        = "bestellformular"
	ShippingForm     = "formular"
	InfoRequestForm  = "form"
	MailTransferForm = "mailtransfer"

	DisclaimerField = "disclaimer_read"
	EmailField      = "email"
)

var (
	ProfileSchema = form.NewSchema(ProfileForm,
		form.PasswordField("password"),
		form.PasswordField("password1"),
	)

	// OrderSchema is the bank transfer order. The first area option is below
	// the transfer minimum; the last one takes a free amount in numsqm1.
	OrderSchema = form.NewSchema(OrderForm,
		form.CheckboxField(DisclaimerField),
		form.RadioField("numsqm", "1", "5", "10", "20", "free"),
		form.TextField("numsqm1"),
		form.CheckboxField("gift"),
	)

	ShippingSchema = form.NewSchema(ShippingForm,
		form.TextField("name"),
		form.TextField("address"),
	)

	InfoRequestSchema = form.NewSchema(InfoRequestForm,
		form.TextField(EmailField),
	)

	MailTransferSchema = form.NewSchema(MailTransferForm,
		form.TextField("vorname"),
		form.TextField("name"),
		form.TextField("strasse"),
		form.TextField("plz"),
		form.TextField("ort"),
	)
)
