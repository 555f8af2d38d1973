// Package user implements the account aggregate as a closed sum type.
//
// Every account satisfies the User capability interface (identity, name, email,
// password and active flag). Two variants exist:
//
//   - *Customer: places orders; carries a fiscal id (CPF), address and phone.
//     Its orders are not held here: they are found by filtering orders by customer id.
//   - *Admin: back-office staff with a department, an employee code and the fixed
//     permission set CREATE, READ, UPDATE, DELETE.
//
// Passwords are kept only as bcrypt hashes. Activation and deactivation are
// idempotent: repeating either is a no-op.
package user
