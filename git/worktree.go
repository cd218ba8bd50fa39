package git

import "context"

// Checkout switches the working tree at dir to ref. The trailing "--"
// keeps git from reading ref as a path.
func (c *Client) Checkout(ctx context.Context, dir, ref string) error {
	return c.run(ctx, dir, "checkout", ref, "--")
}

// ResetHard moves the current branch of the working tree at dir to rev and
// discards local changes.
func (c *Client) ResetHard(ctx context.Context, dir, rev string) error {
	return c.run(ctx, dir, "reset", "--hard", rev)
}
