package website

import (
	"errors"
	"net/http"

	"github.com/Tnecniv1/mathbank-sub001/src/auth"
)

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Log in</title></head>
<body>
	<h1>Log in</h1>
	<form method="POST" action="/login">
		<label>Username <input type="text" name="username"></label>
		<label>Password <input type="password" name="password"></label>
		<button type="submit">Log in</button>
	</form>
</body>
</html>
`

func LoginPage(c *RequestContext) ResponseData {
	if c.CurrentUser != nil {
		return c.Redirect("/", http.StatusSeeOther)
	}

	var res ResponseData
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.Write([]byte(loginPage))
	return res
}

// POST /login
func Login(c *RequestContext) ResponseData {
	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "request must contain form data"))
	}

	username := form.Get("username")
	password := form.Get("password")
	if username == "" || password == "" {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(nil, "you must provide both a username and a password"))
	}

	user, err := auth.ValidateLogin(c, c.Conn, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrUserDoesNotExist) || errors.Is(err, auth.ErrInvalidCredentials) {
			return c.ErrorResponse(http.StatusUnauthorized, NewSafeError(err, "invalid username or password"))
		}
		return errorResponse(c, err)
	}

	session, err := auth.CreateSession(c, c.Conn, user.Username)
	if err != nil {
		return errorResponse(c, err)
	}

	res := c.Redirect("/", http.StatusSeeOther)
	res.SetCookie(auth.NewSessionCookie(session))
	return res
}

// POST /logout
func Logout(c *RequestContext) ResponseData {
	if c.CurrentSession != nil {
		err := auth.DeleteSession(c, c.Conn, c.CurrentSession.ID)
		if err != nil {
			c.Logger.Error().Err(err).Msg("failed to delete session on logout")
		}
	}

	res := c.Redirect("/login", http.StatusSeeOther)
	res.SetCookie(auth.DeleteSessionCookie)
	return res
}
