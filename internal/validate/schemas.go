package validate

// Registration is the farmer self-registration schema. Presence checks run
// first for every required field, then shape checks, so a payload missing a
// field reports the missing field before any shape complaint.
var Registration = Schema{
	{Field: "firstName", Constraint: Required, Message: "First name is required"},
	{Field: "lastName", Constraint: Required, Message: "Last name is required"},
	{Field: "email", Constraint: Required, Message: "Email is required"},
	{Field: "phone", Constraint: Required, Message: "Phone number is required"},
	{Field: "password", Constraint: Required, Message: "Password is required"},
	{Field: "confirmPassword", Constraint: Required, Message: "Please confirm your password"},
	{Field: "farmLocation", Constraint: Required, Message: "Farm location is required"},
	{Field: "farmSize", Constraint: Required, Message: "Farm size is required"},
	{Field: "crops", Constraint: NonEmptyList, Message: "Please select at least one crop"},
	{Field: "terms", Constraint: MustAccept, Message: "You must accept the terms and conditions"},
	{Field: "email", Constraint: Email, Message: "Please enter a valid email address"},
	{Field: "password", Constraint: MinLength, Arg: 6, Message: "Password must be at least 6 characters"},
	{Field: "password", Constraint: MatchesField, Arg: "confirmPassword", Message: "Passwords do not match"},
	{Field: "farmSize", Constraint: PositiveNumber, Message: "Please enter a valid farm size"},
}

// Assessment is the farm-assessment request schema. The form is anonymous, so
// email is optional but must be well-formed when supplied.
var Assessment = Schema{
	{Field: "assessmentType", Constraint: Required, Message: "Assessment type is required"},
	{Field: "farmName", Constraint: Required, Message: "Farm name is required"},
	{Field: "farmLocation", Constraint: Required, Message: "Farm location is required"},
	{Field: "farmSize", Constraint: RequiredPositive, Message: "Valid farm size is required"},
	{Field: "crops", Constraint: NonEmptyList, Message: "Please select at least one crop"},
	{Field: "fullName", Constraint: Required, Message: "Full name is required"},
	{Field: "phone", Constraint: Required, Message: "Phone number is required"},
	{Field: "email", Constraint: Email, Message: "Valid email is required if provided"},
	{Field: "terms", Constraint: MustAccept, Message: "You must accept the terms and conditions"},
}
