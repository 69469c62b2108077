// Package flags provides pflag value types shared by promptpath commands.
package flags
