package domain

// Fixed patient-facing message set. The service serves a single hospital
// audience, so these are intentionally not localized further.
const (
	MsgNationalIDRequired      = "الرجاء إدخال رقم الهوية"
	MsgNationalIDLength        = "رقم الهوية يجب أن يكون 10 أرقام"
	MsgPatientNameRequired     = "الرجاء إدخال اسم المريض"
	MsgPhoneNumberRequired     = "الرجاء إدخال رقم الهاتف"
	MsgAppointmentDateRequired = "الرجاء اختيار تاريخ الموعد"

	MsgTrackingInputRequired = "الرجاء إدخال رقم الهوية ورقم الهاتف"
	MsgBookingNotFound       = "لم يتم العثور على حجز بهذه البيانات"

	MsgWrongPassword = "كلمة المرور غير صحيحة"

	MsgBookingCreated = "تم تسجيل موعدك بنجاح! سنقوم بتجهيز أدويتك قبل الموعد."
)

// DefaultRejectionReason is stored when a booking is rejected without an
// explicit reason.
const DefaultRejectionReason = "أكملت عدد مرات التعبئة أو ليس لديك أمر تعبئة. لابد من زيارة العيادة"
