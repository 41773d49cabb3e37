// palctl is a command line front end for the Palworld REST API client.
package main

func main() {
	Execute()
}
