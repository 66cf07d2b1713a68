// @title        Hostal Tucán Reservations API
// @version      1.0
// @description  Back-office API for users and reservations.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import "github.com/hostaltucan/reservas-api/cmd"

func main() {
	cmd.Execute()
}
