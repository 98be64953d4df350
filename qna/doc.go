// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package qna implements questions, answers and answer votes.

# Voting

Each user has at most one vote per answer. Repeating a vote removes it and the
opposite vote replaces it:

	outcome, err := svc.Vote(ctx, answerID, models.VoteUp, user)
	// VoteCreated, VoteRemoved or VoteChanged

# Moderation

UpdateQuestion and DeleteQuestion require the question's owner or an admin.
Deleting a question also deletes its answers and their votes.
*/
package qna
