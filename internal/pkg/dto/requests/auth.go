package requests

type RegisterPatient struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,alphanum,min=5,max=15"`
	FullName       string `json:"full_name" validate:"required,max=100"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
